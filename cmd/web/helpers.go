package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aarnio/casedesk/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(http.StatusText(status), "method", method, "uri", uri, slog.Any("formdata", r.Form))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

// caseNumberFromPath parses the {caseNumber} path segment.
func caseNumberFromPath(r *http.Request) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue("caseNumber"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse case number", slog.String("caseNumber", r.PathValue("caseNumber")))
	}
	return n, nil
}
