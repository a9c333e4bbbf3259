package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date        time.Time
	Description string
	Type        Type
	Amount      int64
	GST         int64
	Reference   string
	Account     Account
	PayerPayee  string
	Method      Method
	PropertyID  *uuid.UUID
}

type ListFilter struct {
	Account    *Account
	PropertyID *uuid.UUID
	EndDate    *time.Time
}

func (p CreateParams) validate() error {
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	if p.Type != TypeCredit && p.Type != TypeDebit {
		return fmt.Errorf("%w: type must be credit or debit", ErrValidation)
	}

	if p.Account != AccountTrust && p.Account != AccountGeneral {
		return fmt.Errorf("%w: account must be trust or general", ErrValidation)
	}

	if p.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	if p.GST < 0 || p.GST > p.Amount {
		return fmt.Errorf("%w: gst must be between zero and the amount", ErrValidation)
	}

	return nil
}

// Create validates and appends a single transaction. There is no update or
// delete counterpart: ledger history must persist for audit compliance.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := paramsToTransaction(params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

// CreateBatch validates and appends a batch of transactions. The batch is
// all-or-nothing: one invalid entry rejects the whole batch before anything
// is written.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = paramsToTransaction(p)
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("creating transactions: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

// Reverse appends an offsetting transaction for the given record: same
// amount and account, opposite direction. The original is left untouched.
func (s *Service) Reverse(ctx context.Context, id uuid.UUID, reason string) (*Transaction, error) {
	orig, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading transaction to reverse: %w", err)
	}

	opposite := TypeCredit
	if orig.Type == TypeCredit {
		opposite = TypeDebit
	}

	desc := "Reversal: " + orig.Description
	if reason != "" {
		desc += " (" + reason + ")"
	}

	rev := &Transaction{
		ID:          uuid.New(),
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Description: desc,
		Type:        opposite,
		Amount:      orig.Amount,
		GST:         orig.GST,
		Reference:   "REV-" + orig.Reference,
		Account:     orig.Account,
		PayerPayee:  orig.PayerPayee,
		Method:      orig.Method,
		PropertyID:  orig.PropertyID,
	}

	if err := s.repo.CreateTransaction(ctx, rev); err != nil {
		return nil, fmt.Errorf("creating reversal: %w", err)
	}

	return rev, nil
}

func paramsToTransaction(p CreateParams) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Date:        p.Date,
		Description: p.Description,
		Type:        p.Type,
		Amount:      p.Amount,
		GST:         p.GST,
		Reference:   p.Reference,
		Account:     p.Account,
		PayerPayee:  p.PayerPayee,
		Method:      p.Method,
		PropertyID:  p.PropertyID,
	}
}
