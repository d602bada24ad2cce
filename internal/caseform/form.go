// Package caseform converts between the nested shape of a case record and the
// flat text fields of the case editor. Sub-documents are edited as raw JSON
// text so that authors can hand-write arbitrary nested content without a
// structured editor for every shape.
package caseform

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aarnio/casedesk/internal/models"
	"github.com/jmoiron/sqlx/types"
)

// Form is the flat representation of a case shown in the editor. Every field
// is text; the eight JSON fields hold pretty-printed sub-documents.
type Form struct {
	CaseNumber    string
	Title         string
	Subtitle      string
	Description   string
	Scenario      string
	Difficulty    string
	Contacts      string
	Conversations string
	Photos        string
	Notes         string
	CallLog       string
	Emails        string
	Solution      string
	Hints         string
}

const (
	emptyArray  = "[]"
	emptyObject = "{}"
)

// New returns the form for a case that does not exist yet: empty narrative
// fields, beginner difficulty and empty sub-document containers.
func New() Form {
	return Form{
		CaseNumber:    "0",
		Difficulty:    "0",
		Contacts:      emptyArray,
		Conversations: emptyArray,
		Photos:        emptyArray,
		Notes:         emptyArray,
		CallLog:       emptyArray,
		Emails:        emptyArray,
		Solution:      emptyObject,
		Hints:         emptyArray,
	}
}

// FromCase serialises a stored case into its editable form. Sub-documents are
// pretty-printed with two-space indentation; absent ones fall back to their
// empty container so the author always sees valid JSON.
func FromCase(c *models.Case) Form {
	return Form{
		CaseNumber:    strconv.FormatInt(c.CaseNumber, 10),
		Title:         c.Title,
		Subtitle:      c.Subtitle,
		Description:   c.Description,
		Scenario:      c.Scenario,
		Difficulty:    strconv.FormatInt(int64(c.Difficulty), 10),
		Contacts:      prettyJSON(c.Contacts, emptyArray),
		Conversations: prettyJSON(c.Conversations, emptyArray),
		Photos:        prettyJSON(c.Photos, emptyArray),
		Notes:         prettyJSON(c.Notes, emptyArray),
		CallLog:       prettyJSON(c.CallLog, emptyArray),
		Emails:        prettyJSON(c.Emails, emptyArray),
		Solution:      prettyJSON(c.Solution, emptyObject),
		Hints:         prettyJSON(c.Hints, emptyArray),
	}
}

// FromRequest reads the posted editor fields. The request form must already be
// parsed or parseable; PostFormValue parses it on demand.
func FromRequest(r *http.Request) Form {
	return Form{
		CaseNumber:    r.PostFormValue("case_number"),
		Title:         r.PostFormValue("title"),
		Subtitle:      r.PostFormValue("subtitle"),
		Description:   r.PostFormValue("description"),
		Scenario:      r.PostFormValue("scenario"),
		Difficulty:    r.PostFormValue("difficulty"),
		Contacts:      r.PostFormValue("contacts"),
		Conversations: r.PostFormValue("conversations"),
		Photos:        r.PostFormValue("photos"),
		Notes:         r.PostFormValue("notes"),
		CallLog:       r.PostFormValue("call_log"),
		Emails:        r.PostFormValue("emails"),
		Solution:      r.PostFormValue("solution"),
		Hints:         r.PostFormValue("hints"),
	}
}

func prettyJSON(doc types.JSONText, empty string) string {
	if len(doc) == 0 {
		doc = types.JSONText(empty)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		// A stored sub-document should always be valid JSON. Show it verbatim
		// so the author can repair it instead of losing data.
		return string(doc)
	}
	return buf.String()
}
