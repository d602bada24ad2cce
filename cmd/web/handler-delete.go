package main

import (
	"net/http"

	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/models"
)

// deleteCase removes a case and answers an htmx request with the refreshed case
// table so the dashboard updates in place. The confirmation prompt lives on the
// client (hx-confirm); a declined prompt never reaches the server.
func (app *application) deleteCase(w http.ResponseWriter, r *http.Request) {
	caseNumber, err := caseNumberFromPath(r)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	if err = app.cases.Delete(r.Context(), caseNumber); err != nil {
		app.serverError(w, r, errors.Wrap(err, "delete case"))
		return
	}

	h := app.htmx.NewHandler(w, r)
	if !h.IsHxRequest() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var cases []models.Case
	if cases, err = app.cases.List(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "list cases after delete"))
		return
	}

	data := dashboardTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Cases:            cases,
	}
	app.executeTemplate(w, r, http.StatusOK, "dashboard", "case-table", data)
}
