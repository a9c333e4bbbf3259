package bankfeed

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

// MatchStatus is the lifecycle state of a bank line. The transition to
// Processed is one-way: processed lines drop out of the worklist and can
// never be confirmed again.
type MatchStatus string

const (
	StatusUnmatched MatchStatus = "unmatched"
	StatusMatched   MatchStatus = "matched"
	StatusProcessed MatchStatus = "processed"
)

// MatchType classifies what a matched line would be recorded as.
type MatchType string

const (
	MatchRent    MatchType = "rent"
	MatchExpense MatchType = "expense"
)

var (
	ErrNotFound         = errors.New("bank line not found")
	ErrAlreadyProcessed = errors.New("bank line already processed")
	ErrNoSuggestedMatch = errors.New("bank line has no suggested match")
)

// SuggestedMatch is the matcher's best-effort proposal for a line, pending
// user confirmation.
type SuggestedMatch struct {
	PropertyID  uuid.UUID
	Description string
	Type        MatchType
	Confidence  float64
}

// Line is one externally sourced bank transaction awaiting review. Lines
// are transient working state, not ledger records: only confirmation
// materializes a Line into the ledger.
type Line struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      int64 // cents
	Type        ledger.Type
	MatchStatus MatchStatus
	Suggested   *SuggestedMatch
	CreatedAt   time.Time
}

// LineParams is the normalized external representation of a bank line, as
// produced by CSV import or statement extraction.
type LineParams struct {
	Date        time.Time
	Description string
	Amount      int64
	Type        ledger.Type
}
