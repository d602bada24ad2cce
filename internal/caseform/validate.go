package caseform

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aarnio/casedesk/internal/models"
	"github.com/jmoiron/sqlx/types"
)

// ErrorKind classifies why a form field was rejected.
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidNumber ErrorKind = "invalid number"
	KindMalformedJSON ErrorKind = "malformed JSON"
)

// FieldError reports the first form field that failed validation. Validation
// stops at the first offending field so the author fixes one problem at a time.
type FieldError struct {
	Field string
	Kind  ErrorKind
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Kind)
}

// Message is the human-readable form of the error shown next to the editor.
func (e *FieldError) Message() string {
	switch e.Kind {
	case KindRequired:
		return fmt.Sprintf("%s is required", e.Field)
	case KindInvalidNumber:
		return fmt.Sprintf("%s must be a number", e.Field)
	case KindMalformedJSON:
		return fmt.Sprintf("Invalid JSON in %s", e.Field)
	default:
		return e.Error()
	}
}

// Case validates the form and assembles the nested case record.
//
// Scalar checks run first: case_number and title must be present, case_number
// and difficulty must parse as integers. An empty difficulty defaults to
// beginner. The JSON fields are then parsed in a fixed order and the first
// malformed one aborts the pass with a *FieldError naming it. Sub-document
// contents are deliberately not validated; their schema belongs to the
// consuming client.
func (f Form) Case() (models.Case, error) {
	var c models.Case

	caseNumber := strings.TrimSpace(f.CaseNumber)
	if caseNumber == "" {
		return c, &FieldError{Field: "case_number", Kind: KindRequired}
	}
	if strings.TrimSpace(f.Title) == "" {
		return c, &FieldError{Field: "title", Kind: KindRequired}
	}

	n, err := strconv.ParseInt(caseNumber, 10, 64)
	if err != nil {
		return c, &FieldError{Field: "case_number", Kind: KindInvalidNumber}
	}

	var difficulty int64
	if d := strings.TrimSpace(f.Difficulty); d != "" {
		if difficulty, err = strconv.ParseInt(d, 10, 64); err != nil {
			return c, &FieldError{Field: "difficulty", Kind: KindInvalidNumber}
		}
	}

	docs := []struct {
		field string
		text  string
		out   *types.JSONText
	}{
		{"contacts", f.Contacts, &c.Contacts},
		{"conversations", f.Conversations, &c.Conversations},
		{"photos", f.Photos, &c.Photos},
		{"notes", f.Notes, &c.Notes},
		{"call_log", f.CallLog, &c.CallLog},
		{"emails", f.Emails, &c.Emails},
		{"solution", f.Solution, &c.Solution},
		{"hints", f.Hints, &c.Hints},
	}
	for _, doc := range docs {
		text := strings.TrimSpace(doc.text)
		if !json.Valid([]byte(text)) {
			return models.Case{}, &FieldError{Field: doc.field, Kind: KindMalformedJSON}
		}
		*doc.out = types.JSONText(text)
	}

	c.CaseNumber = n
	c.Title = f.Title
	c.Subtitle = f.Subtitle
	c.Description = f.Description
	c.Scenario = f.Scenario
	c.Difficulty = models.Difficulty(difficulty)

	return c, nil
}
