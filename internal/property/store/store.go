package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/property"
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

const selectPropertyColumns = `
	p.id, p.address, p.owner_name, p.fee_bps, p.tenant_name, p.created_at, p.archived_at
`

func scanProperty(s scanner) (*property.Property, error) {
	var p property.Property

	var ownerName, tenantName sql.NullString

	if err := s.Scan(
		&p.ID, &p.Address, &ownerName, &p.FeeBps, &tenantName,
		&p.CreatedAt, &p.ArchivedAt,
	); err != nil {
		return nil, err
	}

	p.OwnerName = ownerName.String
	p.TenantName = tenantName.String

	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *property.Property) error {
	query := `
		INSERT INTO properties (id, address, owner_name, fee_bps, tenant_name, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.ID,
		p.Address,
		nullString(p.OwnerName),
		p.FeeBps,
		nullString(p.TenantName),
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating property: %w", err)
	}

	return nil
}

func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + `
		FROM properties p
		WHERE p.id = $1`

	p, err := scanProperty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, property.ErrNotFound
		}

		return nil, fmt.Errorf("getting property: %w", err)
	}

	return p, nil
}

func (s *Store) ListProperties(ctx context.Context, includeArchived bool) ([]*property.Property, error) {
	query := `SELECT ` + selectPropertyColumns + `
		FROM properties p`

	if !includeArchived {
		query += ` WHERE p.archived_at IS NULL`
	}

	query += ` ORDER BY p.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer rows.Close()

	var props []*property.Property

	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}

		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating property rows: %w", err)
	}

	return props, nil
}

// ArchiveProperty soft-deletes the property. It touches only the
// properties table; linked ledger transactions are never cascaded.
func (s *Store) ArchiveProperty(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE properties
		SET archived_at = NOW()
		WHERE id = $1 AND archived_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("archiving property: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return property.ErrNotFound
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
