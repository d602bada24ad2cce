package repositories_test

import (
	"context"
	"testing"

	"github.com/aarnio/casedesk/internal/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory case store for a single test.
func newTestDB(t *testing.T) *sqlite.Databases {
	t.Helper()
	dbs, err := sqlite.NewDatabases(context.Background(), ":memory:")
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		_ = dbs.Close()
	})
	return dbs
}
