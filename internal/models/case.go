package models

import (
	"github.com/jmoiron/sqlx/types"
)

// Difficulty grades a case for the player. The value is stored as-is, so integers
// outside the known grades render as "Unknown" but survive a round-trip through
// the editor unchanged.
type Difficulty int64

const (
	DifficultyBeginner     Difficulty = 0
	DifficultyIntermediate Difficulty = 1
	DifficultyAdvanced     Difficulty = 2
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Case is a detective case authored for the mobile client.
//
// CaseNumber is the natural key. It is chosen by the author when the case is
// created and never changes afterwards.
//
// The sub-documents are free-form JSON owned by the consuming client; this tool
// only guarantees they are well-formed JSON. Contacts through Hints are arrays,
// Solution is a single object.
type Case struct {
	CaseNumber    int64          `db:"case_number" json:"case_number"`
	Title         string         `db:"title" json:"title"`
	Subtitle      string         `db:"subtitle" json:"subtitle"`
	Description   string         `db:"description" json:"description"`
	Scenario      string         `db:"scenario" json:"scenario"`
	Difficulty    Difficulty     `db:"difficulty" json:"difficulty"`
	Contacts      types.JSONText `db:"contacts" json:"contacts"`
	Conversations types.JSONText `db:"conversations" json:"conversations"`
	Photos        types.JSONText `db:"photos" json:"photos"`
	Notes         types.JSONText `db:"notes" json:"notes"`
	CallLog       types.JSONText `db:"call_log" json:"call_log"`
	Emails        types.JSONText `db:"emails" json:"emails"`
	Solution      types.JSONText `db:"solution" json:"solution"`
	Hints         types.JSONText `db:"hints" json:"hints"`
}
