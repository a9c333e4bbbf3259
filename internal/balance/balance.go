// Package balance derives cashbook and per-property ledger balances from
// the full transaction list. Every function is pure and recomputes from
// scratch; amounts are integer cents, so balance comparisons are exact cent
// equality (the 0.01 epsilon of the float-based predecessor, made precise).
package balance

import (
	"strings"

	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

// Matcher decides whether a transaction belongs to a property's sub-ledger.
// The heuristic fallback is an explicit strategy rather than an implicit
// string comparison so its ambiguity stays visible and testable.
type Matcher interface {
	Matches(tx *ledger.Transaction, p *property.Property) bool
}

// ExactID matches on the transaction's property reference only.
type ExactID struct{}

func (ExactID) Matches(tx *ledger.Transaction, p *property.Property) bool {
	return tx.PropertyID != nil && *tx.PropertyID == p.ID
}

// AddressText matches legacy transactions that carry no property reference
// by case-insensitive substring search of the property address in the
// transaction description.
type AddressText struct{}

func (AddressText) Matches(tx *ledger.Transaction, p *property.Property) bool {
	if tx.PropertyID != nil || p.Address == "" {
		return false
	}

	return strings.Contains(
		strings.ToLower(tx.Description),
		strings.ToLower(p.Address),
	)
}

// DefaultMatcher prefers the exact property reference and falls back to the
// address-text heuristic for legacy records.
func DefaultMatcher() Matcher {
	return chain{ExactID{}, AddressText{}}
}

type chain []Matcher

func (c chain) Matches(tx *ledger.Transaction, p *property.Property) bool {
	for _, m := range c {
		if m.Matches(tx, p) {
			return true
		}
	}

	return false
}

// Cashbook returns the trust cashbook balance in cents: the sum of trust
// credits minus trust debits over the full transaction list. General-account
// transactions never participate.
func Cashbook(txs []*ledger.Transaction) int64 {
	var total int64

	for _, tx := range txs {
		if tx.Account != ledger.AccountTrust {
			continue
		}

		total += signed(tx)
	}

	return total
}

// Ledger returns the sub-ledger balance in cents for one property.
func Ledger(txs []*ledger.Transaction, p *property.Property, m Matcher) int64 {
	var total int64

	for _, tx := range txs {
		if tx.Account != ledger.AccountTrust {
			continue
		}

		if !m.Matches(tx, p) {
			continue
		}

		total += signed(tx)
	}

	return total
}

// LedgersSum sums the non-zero property ledger balances. Properties with a
// zero balance are excluded, matching the trial-balance convention.
func LedgersSum(txs []*ledger.Transaction, props []*property.Property, m Matcher) int64 {
	var total int64

	for _, p := range props {
		if b := Ledger(txs, p, m); b != 0 {
			total += b
		}
	}

	return total
}

func signed(tx *ledger.Transaction) int64 {
	if tx.Type == ledger.TypeDebit {
		return -tx.Amount
	}

	return tx.Amount
}
