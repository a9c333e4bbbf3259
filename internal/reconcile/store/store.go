package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Store holds the single manually entered bank statement balance. The table
// is constrained to one row: there is exactly one trust account per dataset.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetBankBalance(ctx context.Context) (int64, bool, error) {
	query := `SELECT cents FROM bank_balance WHERE id = 1`

	var cents int64

	err := s.db.QueryRowContext(ctx, query).Scan(&cents)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}

		return 0, false, fmt.Errorf("getting bank balance: %w", err)
	}

	return cents, true, nil
}

func (s *Store) SetBankBalance(ctx context.Context, cents int64) error {
	query := `
		INSERT INTO bank_balance (id, cents, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET cents = EXCLUDED.cents, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, cents); err != nil {
		return fmt.Errorf("setting bank balance: %w", err)
	}

	return nil
}
