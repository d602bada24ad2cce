package contexthelpers

import (
	"context"
	"net/http"
)

func AuthenticateContext(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), isAuthenticatedContextKey, true)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), currentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}
