package main

import (
	"net/http"

	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/models"
)

type dashboardTemplateData struct {
	BaseTemplateData

	Cases []models.Case
}

func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	cases, err := app.cases.List(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list cases"))
		return
	}

	data := dashboardTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Cases:            cases,
	}
	app.render(w, r, http.StatusOK, "dashboard", data)
}
