package main

import (
	"context"
	"io"
	"testing"

	"github.com/aarnio/casedesk/internal/e2etest"
	"github.com/stretchr/testify/require"
)

// testAdminPassword is hashed below with bcrypt cost 6; low cost keeps the tests fast.
const (
	testAdminPassword     = "abc"
	testAdminPasswordHash = "$2a$06$If6bvum7DFjUnE9p2uDeDu0YHzrHM6tf.iqN8.yx.jNN1ILEf7h0i"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "CASEDESK_ADDR":
		return "localhost:0", true
	case "CASEDESK_PPROF_PORT":
		return ":0", true
	case "CASEDESK_SQLITE_URL":
		return ":memory:", true
	case "CASEDESK_ADMIN_PASSWORD_HASH":
		return testAdminPasswordHash, true
	default:
		return "", false
	}
}

// startTestServer boots the full server on a random port with an in-memory
// case store and returns a browser-like client for it.
func startTestServer(t *testing.T) *e2etest.Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv, run)
	require.NoError(t, err, "start test server")
	return server.Client()
}
