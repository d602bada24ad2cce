package main

import (
	"net/http"

	"github.com/aarnio/casedesk/ui"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", cacheForeverHeaders(http.FileServerFS(ui.Files)))
	mux.HandleFunc("GET /api/healthy", app.healthy)

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, app.commonContext, app.authenticate)
	protected := session.Append(app.requireAuthentication)

	mux.Handle("GET /login", session.ThenFunc(app.loginForm))
	mux.Handle("POST /api/login", session.ThenFunc(app.loginPost))
	mux.Handle("POST /api/logout", protected.ThenFunc(app.logoutPost))

	mux.Handle("GET /{$}", protected.ThenFunc(app.dashboard))
	mux.Handle("GET /cases/new", protected.ThenFunc(app.newCaseForm))
	mux.Handle("POST /cases/new", protected.ThenFunc(app.createCase))
	mux.Handle("GET /cases/{caseNumber}", protected.ThenFunc(app.editCaseForm))
	mux.Handle("POST /cases/{caseNumber}/edit", protected.ThenFunc(app.updateCase))
	mux.Handle("DELETE /cases/{caseNumber}", protected.ThenFunc(app.deleteCase))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
