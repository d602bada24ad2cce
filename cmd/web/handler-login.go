package main

import (
	"net/http"

	"github.com/aarnio/casedesk/internal/contexthelpers"
	"github.com/aarnio/casedesk/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type loginTemplateData struct {
	BaseTemplateData

	Alert string
}

func (app *application) loginForm(w http.ResponseWriter, r *http.Request) {
	if contexthelpers.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
	}
	app.render(w, r, http.StatusOK, "login", data)
}

func (app *application) loginPost(w http.ResponseWriter, r *http.Request) {
	password := r.PostFormValue("password")

	if err := bcrypt.CompareHashAndPassword(app.adminPasswordHash, []byte(password)); err != nil {
		data := loginTemplateData{
			BaseTemplateData: newBaseTemplateData(r),
			Alert:            "Invalid password",
		}
		app.render(w, r, http.StatusUnprocessableEntity, "login", data)
		return
	}

	// Renew the session token on privilege change to avoid session fixation.
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.sessionManager.Put(r.Context(), authenticatedSessionKey, true)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) logoutPost(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "destroy session"))
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
