// Package e2etest drives a running casedesk server over HTTP the way a browser
// would: cookies, CSRF tokens and parsed HTML documents.
package e2etest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/aarnio/casedesk/internal/errors"
	"github.com/justinas/nosurf"
)

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a cookie-aware HTTP client for the server at url.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// DocFromResponse parses the response body as an HTML document regardless of status code.
func DocFromResponse(resp *http.Response) (*goquery.Document, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// PostForm submits a form to urlPath. The CSRF token is scraped from the login
// page so the call passes the CSRF middleware like a browser submission would.
func (c *Client) PostForm(ctx context.Context, urlPath string, form neturl.Values) (*http.Response, error) {
	csrfToken, err := c.csrfToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch CSRF token")
	}
	form.Set("csrf_token", csrfToken)

	var req *http.Request
	if req, err = c.newRequestWithContext(ctx, http.MethodPost, urlPath,
		strings.NewReader(form.Encode())); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// DeleteHx issues an htmx-style DELETE request with the CSRF token header set.
func (c *Client) DeleteHx(ctx context.Context, urlPath string) (*http.Response, error) {
	csrfToken, err := c.csrfToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch CSRF token")
	}

	var req *http.Request
	if req, err = c.newRequestWithContext(ctx, http.MethodDelete, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	req.Header.Set(nosurf.HeaderName, csrfToken)
	req.Header.Set("HX-Request", "true")

	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// Login signs in with the admin password and returns the dashboard document.
func (c *Client) Login(ctx context.Context, password string) (*goquery.Document, error) {
	resp, err := c.PostForm(ctx, "/api/login", neturl.Values{"password": {password}})
	if err != nil {
		return nil, errors.Wrap(err, "post login form")
	}
	if err = resp.Body.Close(); err != nil {
		return nil, errors.Wrap(err, "close response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code after login", slog.Int("status", resp.StatusCode))
	}
	doc, err := c.GetDoc(ctx, "/")
	if err != nil {
		return nil, errors.Wrap(err, "get dashboard")
	}
	return doc, nil
}

// csrfToken scrapes the CSRF token from the login page. The token is bound to
// the session cookie, so it is valid for any later form submission by this client.
func (c *Client) csrfToken(ctx context.Context) (string, error) {
	doc, err := c.GetDoc(ctx, "/login")
	if err != nil {
		return "", errors.Wrap(err, "get login page")
	}
	token, ok := doc.Find(`input[name="csrf_token"]`).First().Attr("value")
	if !ok {
		return "", errors.New("CSRF token not found on login page")
	}
	return token, nil
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if req, err = http.NewRequest(method, c.url+urlPath, body); err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req.WithContext(ctx), nil
}
