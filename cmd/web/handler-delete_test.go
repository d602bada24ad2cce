package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/aarnio/casedesk/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCase_refreshesTable(t *testing.T) {
	t.Parallel()
	client := startTestServer(t)
	ctx := context.Background()

	_, err := client.Login(ctx, testAdminPassword)
	require.NoError(t, err)

	for _, c := range []struct{ number, title string }{
		{"1", "Keeper"},
		{"3", "Goner"},
	} {
		resp, err := client.PostForm(ctx, "/cases/new", testCaseValues(c.number, c.title))
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	// The dashboard delete button targets this endpoint with htmx; the server
	// answers with the refreshed table fragment.
	resp, err := client.DeleteHx(ctx, "/cases/3")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	fragment, err := e2etest.DocFromResponse(resp)
	require.NoError(t, err)
	table := fragment.Find("#case-table").Text()
	assert.Contains(t, table, "Keeper")
	assert.NotContains(t, table, "Goner")

	// Deleting a case that is already gone is not an error.
	resp, err = client.DeleteHx(ctx, "/cases/3")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteCase_confirmationHappensOnTheClient(t *testing.T) {
	t.Parallel()
	client := startTestServer(t)
	ctx := context.Background()

	_, err := client.Login(ctx, testAdminPassword)
	require.NoError(t, err)

	resp, err := client.PostForm(ctx, "/cases/new", testCaseValues("1", "Keeper"))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	// The delete button carries an hx-confirm prompt, so a declined
	// confirmation never produces a request.
	doc, err := client.GetDoc(ctx, "/")
	require.NoError(t, err)
	confirm, ok := doc.Find(`button[hx-delete="/cases/1"]`).Attr("hx-confirm")
	require.True(t, ok, "delete button should require confirmation")
	assert.Contains(t, confirm, "Are you sure")
}
