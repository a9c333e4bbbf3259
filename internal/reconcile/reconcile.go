package reconcile

import "errors"

// Status is the reconciliation state, recomputed from the three balances on
// every query rather than tracked event-by-event.
type Status string

const (
	StatusBalanced     Status = "balanced"
	StatusUnreconciled Status = "unreconciled"
)

var (
	// ErrLockedOut is returned while the unlock endpoint is throttled after
	// repeated failed password attempts.
	ErrLockedOut = errors.New("too many failed unlock attempts, try again later")
)

// Snapshot is the three-way reconciliation position at a point in time.
// All amounts are integer cents.
type Snapshot struct {
	Cashbook    int64
	LedgersSum  int64
	BankBalance int64
	// BankBalanceSet reports whether the bank statement balance has been
	// explicitly entered; until then it defaults to the cashbook balance.
	BankBalanceSet bool
	Variance       int64 // cashbook minus bank balance
	Status         Status
}

// Balanced reports whether cashbook, ledgers sum and bank balance all agree.
// Amounts are cents, so agreement is exact equality: any discrepancy of one
// cent or more is unreconciled.
func (s Snapshot) Balanced() bool {
	return s.Cashbook == s.LedgersSum && s.BankBalance == s.Cashbook
}
