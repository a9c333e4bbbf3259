package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

// Store persists ledger transactions. The table is append-only: no UPDATE
// or DELETE statement exists anywhere in this package.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.date, t.description, t.type, t.amount, t.gst, t.reference,
	t.account, t.payer_payee, t.method, t.property_id, t.created_at
`

// scanTransaction reads a transaction row in selectTransactionColumns order.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var typeStr, accountStr string

	var payerPayee, method sql.NullString

	var propertyID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.Description, &typeStr, &tx.Amount, &tx.GST,
		&tx.Reference, &accountStr, &payerPayee, &method, &propertyID,
		&tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = ledger.Type(typeStr)
	tx.Account = ledger.Account(accountStr)
	tx.PayerPayee = payerPayee.String
	tx.Method = ledger.Method(method.String)
	tx.PropertyID = propertyID

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, description, type, amount, gst, reference, account, payer_payee, method, property_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ID,
		tx.Date,
		tx.Description,
		tx.Type,
		tx.Amount,
		tx.GST,
		tx.Reference,
		tx.Account,
		nullString(tx.PayerPayee),
		nullString(string(tx.Method)),
		tx.PropertyID,
	).Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) CreateTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (id, date, description, type, amount, gst, reference, account, payer_payee, method, property_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.ID,
			tx.Date,
			tx.Description,
			tx.Type,
			tx.Amount,
			tx.GST,
			tx.Reference,
			tx.Account,
			nullString(tx.PayerPayee),
			nullString(string(tx.Method)),
			tx.PropertyID,
		).Scan(&tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Account != nil {
		query += fmt.Sprintf(" AND t.account = $%d", argIdx)

		args = append(args, *filter.Account)
		argIdx++
	}

	if filter.PropertyID != nil {
		query += fmt.Sprintf(" AND t.property_id = $%d", argIdx)

		args = append(args, *filter.PropertyID)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
