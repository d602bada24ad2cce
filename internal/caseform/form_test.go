package caseform_test

import (
	"testing"

	"github.com/aarnio/casedesk/internal/caseform"
	"github.com/aarnio/casedesk/internal/models"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCase() models.Case {
	return models.Case{
		CaseNumber:    7,
		Title:         "The Vanishing Sigil",
		Subtitle:      "A locked-phone mystery",
		Description:   "A designer disappears the night before a product launch.",
		Scenario:      "You recover the designer's phone from a café table.",
		Difficulty:    models.DifficultyIntermediate,
		Contacts:      types.JSONText(`[{"name":"Mira","number":"+3584012345"}]`),
		Conversations: types.JSONText(`[{"with":"Mira","messages":["where are you?"]}]`),
		Photos:        types.JSONText(`[{"id":"p1","caption":"office door"}]`),
		Notes:         types.JSONText(`[{"text":"meet at 9"}]`),
		CallLog:       types.JSONText(`[{"number":"+3584012345","missed":true}]`),
		Emails:        types.JSONText(`[{"from":"boss@example.com","subject":"launch"}]`),
		Solution:      types.JSONText(`{"culprit":"Mira","motive":"rivalry"}`),
		Hints:         types.JSONText(`["check the call log"]`),
	}
}

func TestNew_defaults(t *testing.T) {
	form := caseform.New()

	assert.Equal(t, "0", form.CaseNumber)
	assert.Equal(t, "0", form.Difficulty)
	assert.Empty(t, form.Title)
	assert.Empty(t, form.Subtitle)
	assert.Empty(t, form.Description)
	assert.Empty(t, form.Scenario)
	for _, field := range []string{
		form.Contacts, form.Conversations, form.Photos, form.Notes, form.CallLog, form.Emails, form.Hints,
	} {
		assert.Equal(t, "[]", field)
	}
	assert.Equal(t, "{}", form.Solution)
}

func TestFromCase_roundTrip(t *testing.T) {
	original := sampleCase()

	form := caseform.FromCase(&original)
	got, err := form.Case()
	require.NoError(t, err)

	assert.Equal(t, original.CaseNumber, got.CaseNumber)
	assert.Equal(t, original.Title, got.Title)
	assert.Equal(t, original.Subtitle, got.Subtitle)
	assert.Equal(t, original.Description, got.Description)
	assert.Equal(t, original.Scenario, got.Scenario)
	assert.Equal(t, original.Difficulty, got.Difficulty)
	// Sub-documents round-trip modulo whitespace since the form pretty-prints them.
	assert.JSONEq(t, string(original.Contacts), string(got.Contacts))
	assert.JSONEq(t, string(original.Conversations), string(got.Conversations))
	assert.JSONEq(t, string(original.Photos), string(got.Photos))
	assert.JSONEq(t, string(original.Notes), string(got.Notes))
	assert.JSONEq(t, string(original.CallLog), string(got.CallLog))
	assert.JSONEq(t, string(original.Emails), string(got.Emails))
	assert.JSONEq(t, string(original.Solution), string(got.Solution))
	assert.JSONEq(t, string(original.Hints), string(got.Hints))
}

func TestFromCase_absentSubDocuments(t *testing.T) {
	c := models.Case{
		CaseNumber: 1,
		Title:      "Bare bones",
	}

	form := caseform.FromCase(&c)

	for _, field := range []string{
		form.Contacts, form.Conversations, form.Photos, form.Notes, form.CallLog, form.Emails, form.Hints,
	} {
		assert.Equal(t, "[]", field)
	}
	assert.Equal(t, "{}", form.Solution)
}

func TestForm_Case_validation(t *testing.T) {
	valid := caseform.FromCase(&models.Case{CaseNumber: 3, Title: "ok"})

	tests := []struct {
		name      string
		mutate    func(f *caseform.Form)
		wantField string
		wantKind  caseform.ErrorKind
	}{
		{
			name:      "missing case number",
			mutate:    func(f *caseform.Form) { f.CaseNumber = "" },
			wantField: "case_number",
			wantKind:  caseform.KindRequired,
		},
		{
			name:      "missing title",
			mutate:    func(f *caseform.Form) { f.Title = "" },
			wantField: "title",
			wantKind:  caseform.KindRequired,
		},
		{
			name:      "non-numeric case number",
			mutate:    func(f *caseform.Form) { f.CaseNumber = "seven" },
			wantField: "case_number",
			wantKind:  caseform.KindInvalidNumber,
		},
		{
			name:      "non-numeric difficulty",
			mutate:    func(f *caseform.Form) { f.Difficulty = "hard" },
			wantField: "difficulty",
			wantKind:  caseform.KindInvalidNumber,
		},
		{
			name:      "malformed photos",
			mutate:    func(f *caseform.Form) { f.Photos = `[{"broken":` },
			wantField: "photos",
			wantKind:  caseform.KindMalformedJSON,
		},
		{
			name: "malformed photos short-circuits before later fields",
			mutate: func(f *caseform.Form) {
				f.Photos = `not json`
				f.Hints = `also not json`
			},
			wantField: "photos",
			wantKind:  caseform.KindMalformedJSON,
		},
		{
			name:      "malformed solution",
			mutate:    func(f *caseform.Form) { f.Solution = `{"open":` },
			wantField: "solution",
			wantKind:  caseform.KindMalformedJSON,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			got, err := form.Case()
			require.Error(t, err)
			assert.Zero(t, got)

			var fieldErr *caseform.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.Equal(t, tt.wantKind, fieldErr.Kind)
		})
	}
}

func TestForm_Case_difficultyPassThrough(t *testing.T) {
	form := caseform.New()
	form.Title = "Out of range"
	form.CaseNumber = "9"
	form.Difficulty = "42"

	got, err := form.Case()
	require.NoError(t, err)
	// No range enforcement: unknown grades are persisted as-is.
	assert.Equal(t, models.Difficulty(42), got.Difficulty)
	assert.Equal(t, "Unknown", got.Difficulty.String())
}

func TestForm_Case_emptyDifficultyDefaultsToBeginner(t *testing.T) {
	form := caseform.New()
	form.Title = "Defaulted"
	form.CaseNumber = "4"
	form.Difficulty = ""

	got, err := form.Case()
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyBeginner, got.Difficulty)
}
