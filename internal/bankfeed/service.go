package bankfeed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=bankfeed
type Repository interface {
	CreateLines(ctx context.Context, lines []*Line) error
	GetLine(ctx context.Context, id uuid.UUID) (*Line, error)
	ListLines(ctx context.Context, includeProcessed bool) ([]*Line, error)
	SaveSuggestion(ctx context.Context, line *Line) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

// Ledger is the slice of the ledger service the matcher needs: appending
// confirmed lines as transactions.
type Ledger interface {
	Create(ctx context.Context, params ledger.CreateParams) (*ledger.Transaction, error)
}

type PropertyLister interface {
	ListActive(ctx context.Context) ([]*property.Property, error)
}

// Extractor parses a scanned bank statement into raw lines. Implementations
// may fail or return nothing; either way no partial state is written.
type Extractor interface {
	ExtractTransactions(ctx context.Context, image []byte) ([]LineParams, error)
}

type Service struct {
	repo      Repository
	ledger    Ledger
	props     PropertyLister
	extractor Extractor
}

func NewService(repo Repository, lg Ledger, props PropertyLister, extractor Extractor) *Service {
	return &Service{
		repo:      repo,
		ledger:    lg,
		props:     props,
		extractor: extractor,
	}
}

// ImportLines normalizes raw line params into unmatched worklist entries.
func (s *Service) ImportLines(ctx context.Context, params []LineParams) ([]*Line, error) {
	if len(params) == 0 {
		return nil, nil
	}

	lines := make([]*Line, len(params))
	for i, p := range params {
		lines[i] = &Line{
			ID:          uuid.New(),
			Date:        p.Date,
			Description: p.Description,
			Amount:      p.Amount,
			Type:        p.Type,
			MatchStatus: StatusUnmatched,
		}
	}

	if err := s.repo.CreateLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("creating bank lines: %w", err)
	}

	return lines, nil
}

// ImportCSV parses a bank CSV export and adds its rows to the worklist.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) ([]*Line, error) {
	params, err := ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	return s.ImportLines(ctx, params)
}

// ImportStatement runs AI extraction over a scanned statement and adds the
// extracted rows to the worklist. A failed or empty extraction imports
// nothing; the existing worklist is never touched.
func (s *Service) ImportStatement(ctx context.Context, image []byte) ([]*Line, error) {
	params, err := s.extractor.ExtractTransactions(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("extracting statement: %w", err)
	}

	return s.ImportLines(ctx, params)
}

// Worklist returns the lines still awaiting review, processed ones excluded.
func (s *Service) Worklist(ctx context.Context) ([]*Line, error) {
	return s.repo.ListLines(ctx, false)
}

// AutoMatch runs the heuristic matcher over every non-processed line and
// persists the suggestions. Lines with no plausible property stay
// unmatched; that is an expected outcome, not an error.
func (s *Service) AutoMatch(ctx context.Context) ([]*Line, error) {
	lines, err := s.repo.ListLines(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing bank lines: %w", err)
	}

	props, err := s.props.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	for _, line := range lines {
		suggested := suggestMatch(line, props)
		if suggested == nil {
			continue
		}

		line.Suggested = suggested
		line.MatchStatus = StatusMatched

		if err := s.repo.SaveSuggestion(ctx, line); err != nil {
			return nil, fmt.Errorf("saving suggestion for line %s: %w", line.ID, err)
		}
	}

	return lines, nil
}

// Confirm materializes a matched line into a trust-account ledger
// transaction and marks the line processed. A processed line is rejected
// outright so the same bank line can never be recorded twice.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	line, err := s.repo.GetLine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading bank line: %w", err)
	}

	if line.MatchStatus == StatusProcessed {
		return nil, ErrAlreadyProcessed
	}

	if line.Suggested == nil {
		return nil, ErrNoSuggestedMatch
	}

	propID := line.Suggested.PropertyID

	tx, err := s.ledger.Create(ctx, ledger.CreateParams{
		Date:        line.Date,
		Description: line.Suggested.Description,
		Type:        line.Type,
		Amount:      line.Amount,
		Reference:   syntheticReference(line.ID),
		Account:     ledger.AccountTrust,
		Method:      ledger.MethodEFT,
		PropertyID:  &propID,
	})
	if err != nil {
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	if err := s.repo.MarkProcessed(ctx, line.ID); err != nil {
		return nil, fmt.Errorf("marking line processed: %w", err)
	}

	return tx, nil
}

func syntheticReference(id uuid.UUID) string {
	return "BF-" + strings.ToUpper(id.String()[:8])
}
