package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/bankfeed"
	"github.com/kestrelpm/trustbooks/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectLineColumns = `
	l.id, l.date, l.description, l.amount, l.type, l.match_status,
	l.suggested_property_id, l.suggested_description, l.suggested_type,
	l.suggested_confidence, l.created_at
`

func scanLine(s scanner) (*bankfeed.Line, error) {
	var line bankfeed.Line

	var typeStr, statusStr string

	var sugProp *uuid.UUID

	var sugDesc, sugType sql.NullString

	var sugConf sql.NullFloat64

	if err := s.Scan(
		&line.ID, &line.Date, &line.Description, &line.Amount, &typeStr,
		&statusStr, &sugProp, &sugDesc, &sugType, &sugConf, &line.CreatedAt,
	); err != nil {
		return nil, err
	}

	line.Type = ledger.Type(typeStr)
	line.MatchStatus = bankfeed.MatchStatus(statusStr)

	if sugProp != nil {
		line.Suggested = &bankfeed.SuggestedMatch{
			PropertyID:  *sugProp,
			Description: sugDesc.String,
			Type:        bankfeed.MatchType(sugType.String),
			Confidence:  sugConf.Float64,
		}
	}

	return &line, nil
}

func (s *Store) CreateLines(ctx context.Context, lines []*bankfeed.Line) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO bank_lines (id, date, description, amount, type, match_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	for _, line := range lines {
		err := dbTx.QueryRowContext(ctx, query,
			line.ID,
			line.Date,
			line.Description,
			line.Amount,
			line.Type,
			line.MatchStatus,
		).Scan(&line.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating bank line: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (s *Store) GetLine(ctx context.Context, id uuid.UUID) (*bankfeed.Line, error) {
	query := `SELECT ` + selectLineColumns + `
		FROM bank_lines l
		WHERE l.id = $1`

	line, err := scanLine(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bankfeed.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank line: %w", err)
	}

	return line, nil
}

func (s *Store) ListLines(ctx context.Context, includeProcessed bool) ([]*bankfeed.Line, error) {
	query := `SELECT ` + selectLineColumns + `
		FROM bank_lines l`

	if !includeProcessed {
		query += ` WHERE l.match_status <> 'processed'`
	}

	query += ` ORDER BY l.date ASC, l.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bank lines: %w", err)
	}
	defer rows.Close()

	var lines []*bankfeed.Line

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank line rows: %w", err)
	}

	return lines, nil
}

func (s *Store) SaveSuggestion(ctx context.Context, line *bankfeed.Line) error {
	query := `
		UPDATE bank_lines
		SET match_status = $1, suggested_property_id = $2, suggested_description = $3,
		    suggested_type = $4, suggested_confidence = $5
		WHERE id = $6 AND match_status <> 'processed'
	`

	var (
		sugProp *uuid.UUID
		sugDesc sql.NullString
		sugType sql.NullString
		sugConf sql.NullFloat64
	)

	if line.Suggested != nil {
		propID := line.Suggested.PropertyID
		sugProp = &propID
		sugDesc = sql.NullString{String: line.Suggested.Description, Valid: true}
		sugType = sql.NullString{String: string(line.Suggested.Type), Valid: true}
		sugConf = sql.NullFloat64{Float64: line.Suggested.Confidence, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		line.MatchStatus, sugProp, sugDesc, sugType, sugConf, line.ID,
	)
	if err != nil {
		return fmt.Errorf("saving suggestion: %w", err)
	}

	return nil
}

// MarkProcessed flips a line to processed. The guard in the WHERE clause
// makes the transition one-way at the database level as well.
func (s *Store) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bank_lines
		SET match_status = 'processed'
		WHERE id = $1 AND match_status <> 'processed'
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking line processed: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bankfeed.ErrAlreadyProcessed
	}

	return nil
}
