package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/internal/models"
	"github.com/aarnio/casedesk/internal/sqlite"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	// ErrCaseNotFound is returned when no case matches the given case number.
	ErrCaseNotFound = errors.NewSentinel("case not found")
	// ErrDuplicateCase is returned when creating a case whose number is already taken.
	// The store's primary-key constraint enforces uniqueness; the existing row is untouched.
	ErrDuplicateCase = errors.NewSentinel("case number already exists")
)

const caseColumns = `case_number, title, subtitle, description, scenario, difficulty,
	contacts, conversations, photos, notes, call_log, emails, solution, hints`

type CaseRepository struct {
	dbs    *sqlite.Databases
	logger *slog.Logger
}

func NewCaseRepository(dbs *sqlite.Databases, logger *slog.Logger) *CaseRepository {
	return &CaseRepository{
		dbs:    dbs,
		logger: logger.With("source", "CaseRepository"),
	}
}

// List returns every case ordered by case number ascending.
func (r *CaseRepository) List(ctx context.Context) ([]models.Case, error) {
	var cases []models.Case
	stmt := `SELECT ` + caseColumns + ` FROM cases ORDER BY case_number ASC`
	if err := r.dbs.Read.SelectContext(ctx, &cases, stmt); err != nil {
		return nil, errors.Wrap(err, "select cases")
	}
	return cases, nil
}

// Get returns the case with the given number or ErrCaseNotFound.
func (r *CaseRepository) Get(ctx context.Context, caseNumber int64) (*models.Case, error) {
	var c models.Case
	stmt := `SELECT ` + caseColumns + ` FROM cases WHERE case_number = ?`
	if err := r.dbs.Read.GetContext(ctx, &c, stmt, caseNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrCaseNotFound, "get case", slog.Int64("case_number", caseNumber))
		}
		return nil, errors.Wrap(err, "get case", slog.Int64("case_number", caseNumber))
	}
	return &c, nil
}

// Create inserts a new case. The author chooses the case number; if it is
// already taken the primary-key constraint rejects the insert and
// ErrDuplicateCase is returned.
func (r *CaseRepository) Create(ctx context.Context, c models.Case) error {
	stmt := `INSERT INTO cases (` + caseColumns + `)
	VALUES (:case_number, :title, :subtitle, :description, :scenario, :difficulty,
	        :contacts, :conversations, :photos, :notes, :call_log, :emails, :solution, :hints)`
	if _, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, c); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return errors.Wrap(ErrDuplicateCase, "insert case", slog.Int64("case_number", c.CaseNumber))
		}
		return errors.Wrap(err, "insert case", slog.Int64("case_number", c.CaseNumber))
	}
	return nil
}

// Update replaces every field of the case identified by caseNumber except the
// case number itself. Whatever number the record carries is ignored in favour
// of the argument, so an edited form cannot re-key a case.
func (r *CaseRepository) Update(ctx context.Context, caseNumber int64, c models.Case) error {
	c.CaseNumber = caseNumber
	stmt := `UPDATE cases
	SET title = :title, subtitle = :subtitle, description = :description, scenario = :scenario,
	    difficulty = :difficulty, contacts = :contacts, conversations = :conversations,
	    photos = :photos, notes = :notes, call_log = :call_log, emails = :emails,
	    solution = :solution, hints = :hints
	WHERE case_number = :case_number`
	res, err := r.dbs.ReadWrite.NamedExecContext(ctx, stmt, c)
	if err != nil {
		return errors.Wrap(err, "update case", slog.Int64("case_number", caseNumber))
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if rows == 0 {
		return errors.Wrap(ErrCaseNotFound, "update case", slog.Int64("case_number", caseNumber))
	}
	return nil
}

// Delete removes the case. Deleting a case that does not exist is not an
// error; the caller has already confirmed the intent.
func (r *CaseRepository) Delete(ctx context.Context, caseNumber int64) error {
	stmt := `DELETE FROM cases WHERE case_number = ?`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt, caseNumber); err != nil {
		return errors.Wrap(err, "delete case", slog.Int64("case_number", caseNumber))
	}
	return nil
}
