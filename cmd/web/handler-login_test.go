package main

import (
	"context"
	"net/http"
	neturl "net/url"
	"testing"

	"github.com/aarnio/casedesk/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGate_redirectsAnonymousVisitors(t *testing.T) {
	t.Parallel()
	client := startTestServer(t)
	ctx := context.Background()

	for _, path := range []string{"/", "/cases/new", "/cases/3"} {
		resp, err := client.Get(ctx, path)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		// The client follows the redirect chain; it must end on the sign-in page.
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "/login", resp.Request.URL.Path, "path %s should redirect to login", path)
	}
}

func TestLogin_wrongPassword(t *testing.T) {
	t.Parallel()
	client := startTestServer(t)
	ctx := context.Background()

	resp, err := client.PostForm(ctx, "/api/login", neturl.Values{"password": {"moriarty"}})
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	doc, err := e2etest.DocFromResponse(resp)
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".alert").Text(), "Invalid password")
}

func TestLoginAndLogout(t *testing.T) {
	t.Parallel()
	client := startTestServer(t)
	ctx := context.Background()

	doc, err := client.Login(ctx, testAdminPassword)
	require.NoError(t, err)
	assert.Contains(t, doc.Find("#case-table").Text(), "No cases found")

	resp, err := client.PostForm(ctx, "/api/logout", neturl.Values{})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "/login", resp.Request.URL.Path)

	// The dashboard is gated again after sign-out.
	resp, err = client.Get(ctx, "/")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "/login", resp.Request.URL.Path)
}
