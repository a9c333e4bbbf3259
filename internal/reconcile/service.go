package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kestrelpm/trustbooks/internal/auth"
	"github.com/kestrelpm/trustbooks/internal/balance"
	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=reconcile
type TransactionLister interface {
	List(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error)
}

type PropertyLister interface {
	ListActive(ctx context.Context) ([]*property.Property, error)
}

type Repository interface {
	// GetBankBalance returns the manually entered statement balance in
	// cents and whether one has been set at all.
	GetBankBalance(ctx context.Context) (int64, bool, error)
	SetBankBalance(ctx context.Context, cents int64) error
}

const (
	maxUnlockFailures = 5
	lockoutWindow     = 30 * time.Second
)

type Service struct {
	ledger   TransactionLister
	props    PropertyLister
	repo     Repository
	verifier auth.Verifier
	tokens   auth.TokenIssuer
	matcher  balance.Matcher

	mu          sync.Mutex
	failures    int
	lockedUntil time.Time
}

func NewService(
	txs TransactionLister,
	props PropertyLister,
	repo Repository,
	verifier auth.Verifier,
	tokens auth.TokenIssuer,
) *Service {
	return &Service{
		ledger:   txs,
		props:    props,
		repo:     repo,
		verifier: verifier,
		tokens:   tokens,
		matcher:  balance.DefaultMatcher(),
	}
}

// Snapshot recomputes the three-way reconciliation position from scratch:
// cashbook from all trust transactions, ledgers sum over active properties,
// and the manual bank balance (defaulting to the cashbook until set).
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	account := ledger.AccountTrust

	txs, err := s.ledger.List(ctx, ledger.ListFilter{Account: &account})
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing trust transactions: %w", err)
	}

	props, err := s.props.ListActive(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing properties: %w", err)
	}

	cashbook := balance.Cashbook(txs)
	ledgersSum := balance.LedgersSum(txs, props, s.matcher)

	bank, set, err := s.repo.GetBankBalance(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading bank balance: %w", err)
	}

	if !set {
		bank = cashbook
	}

	snap := Snapshot{
		Cashbook:       cashbook,
		LedgersSum:     ledgersSum,
		BankBalance:    bank,
		BankBalanceSet: set,
		Variance:       cashbook - bank,
	}

	snap.Status = StatusUnreconciled
	if snap.Balanced() {
		snap.Status = StatusBalanced
	}

	return snap, nil
}

// Unlock verifies the operator password and, on success, returns a
// short-lived edit token authorizing SetBankBalance. Five consecutive
// failures lock the endpoint for thirty seconds.
func (s *Service) Unlock(ctx context.Context, password string) (string, error) {
	if err := s.checkThrottle(); err != nil {
		return "", err
	}

	ok, err := s.verifier.VerifyPassword(ctx, password)
	if err != nil {
		return "", fmt.Errorf("verifying password: %w", err)
	}

	if !ok {
		s.recordFailure()
		return "", auth.ErrBadCredentials
	}

	s.resetFailures()

	token, err := s.tokens.Issue("bank-balance")
	if err != nil {
		return "", fmt.Errorf("issuing edit token: %w", err)
	}

	return token, nil
}

// SetBankBalance saves the manual statement balance. It requires a valid
// edit token from Unlock; the balance is locked again the moment it is
// saved, since tokens are short-lived and discarded by the caller.
func (s *Service) SetBankBalance(ctx context.Context, token string, cents int64) error {
	if err := s.tokens.Validate(token); err != nil {
		return err
	}

	if err := s.repo.SetBankBalance(ctx, cents); err != nil {
		return fmt.Errorf("saving bank balance: %w", err)
	}

	return nil
}

func (s *Service) checkThrottle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.lockedUntil) {
		return ErrLockedOut
	}

	return nil
}

func (s *Service) recordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures++
	if s.failures >= maxUnlockFailures {
		s.lockedUntil = time.Now().Add(lockoutWindow)
		s.failures = 0
	}
}

func (s *Service) resetFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = 0
	s.lockedUntil = time.Time{}
}
