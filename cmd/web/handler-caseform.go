package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aarnio/casedesk/internal/caseform"
	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/repositories"
)

type caseFormTemplateData struct {
	BaseTemplateData

	Form      caseform.Form
	IsEditing bool
	Action    string

	// FieldError names the first invalid field; Alert carries store-level failures.
	FieldError *caseform.FieldError
	Alert      string
}

func (app *application) newCaseForm(w http.ResponseWriter, r *http.Request) {
	data := caseFormTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Form:             caseform.New(),
		Action:           "/cases/new",
	}
	app.render(w, r, http.StatusOK, "caseform", data)
}

func (app *application) createCase(w http.ResponseWriter, r *http.Request) {
	form := caseform.FromRequest(r)
	data := caseFormTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Form:             form,
		Action:           "/cases/new",
	}

	c, err := form.Case()
	if err != nil {
		var fieldErr *caseform.FieldError
		if !errors.As(err, &fieldErr) {
			app.serverError(w, r, errors.Wrap(err, "validate case form"))
			return
		}
		data.FieldError = fieldErr
		app.render(w, r, http.StatusUnprocessableEntity, "caseform", data)
		return
	}

	if err = app.cases.Create(r.Context(), c); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCase) {
			data.Alert = fmt.Sprintf("Case number %d already exists", c.CaseNumber)
			app.render(w, r, http.StatusUnprocessableEntity, "caseform", data)
			return
		}
		app.logger.LogAttrs(r.Context(), slog.LevelError, "create case failed", errors.SlogError(err))
		data.Alert = "Error saving case"
		app.render(w, r, http.StatusInternalServerError, "caseform", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) editCaseForm(w http.ResponseWriter, r *http.Request) {
	caseNumber, err := caseNumberFromPath(r)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	c, err := app.cases.Get(r.Context(), caseNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, errors.Wrap(err, "get case", slog.Int64("case_number", caseNumber)))
		return
	}

	data := caseFormTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Form:             caseform.FromCase(c),
		IsEditing:        true,
		Action:           fmt.Sprintf("/cases/%d/edit", caseNumber),
	}
	app.render(w, r, http.StatusOK, "caseform", data)
}

func (app *application) updateCase(w http.ResponseWriter, r *http.Request) {
	caseNumber, err := caseNumberFromPath(r)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	form := caseform.FromRequest(r)
	// The case number input is disabled in the editor and the record identity
	// must not change on edit, so the path is the only source of truth.
	form.CaseNumber = strconv.FormatInt(caseNumber, 10)
	data := caseFormTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Form:             form,
		IsEditing:        true,
		Action:           fmt.Sprintf("/cases/%d/edit", caseNumber),
	}

	c, err := form.Case()
	if err != nil {
		var fieldErr *caseform.FieldError
		if !errors.As(err, &fieldErr) {
			app.serverError(w, r, errors.Wrap(err, "validate case form"))
			return
		}
		data.FieldError = fieldErr
		app.render(w, r, http.StatusUnprocessableEntity, "caseform", data)
		return
	}

	if err = app.cases.Update(r.Context(), caseNumber, c); err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			data.Alert = fmt.Sprintf("Case %d no longer exists", caseNumber)
			app.render(w, r, http.StatusNotFound, "caseform", data)
			return
		}
		app.logger.LogAttrs(r.Context(), slog.LevelError, "update case failed", errors.SlogError(err))
		data.Alert = "Error saving case"
		app.render(w, r, http.StatusInternalServerError, "caseform", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
