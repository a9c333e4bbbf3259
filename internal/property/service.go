package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=property
type Repository interface {
	CreateProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	ListProperties(ctx context.Context, includeArchived bool) ([]*Property, error)
	ArchiveProperty(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Address    string
	OwnerName  string
	FeeBps     int
	TenantName string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Property, error) {
	if params.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}

	if params.FeeBps < 0 || params.FeeBps > 10000 {
		return nil, fmt.Errorf("%w: fee must be between 0 and 10000 basis points", ErrValidation)
	}

	p := &Property{
		ID:         uuid.New(),
		Address:    params.Address,
		OwnerName:  params.OwnerName,
		FeeBps:     params.FeeBps,
		TenantName: params.TenantName,
	}

	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Property, error) {
	return s.repo.GetProperty(ctx, id)
}

// ListActive returns properties that have not been archived.
func (s *Service) ListActive(ctx context.Context) ([]*Property, error) {
	return s.repo.ListProperties(ctx, false)
}

func (s *Service) ListAll(ctx context.Context) ([]*Property, error) {
	return s.repo.ListProperties(ctx, true)
}

// Archive soft-deletes a property from the active registry. The property's
// ledger transactions are deliberately left in place: compliance requires
// full history even for properties no longer under management.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.ArchiveProperty(ctx, id); err != nil {
		return fmt.Errorf("archiving property: %w", err)
	}

	return nil
}
