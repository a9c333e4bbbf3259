package bankfeed

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

const (
	rentConfidence    = 0.95
	expenseConfidence = 0.85

	// minTokenLen keeps street numbers and short words like "ST" out of
	// the token comparison.
	minTokenLen = 4
)

// suggestMatch proposes a property for a bank line, or nil when no property
// matches. The heuristic is a single pass in registry order, so ties go to
// the first property found. Credits are proposed as rent, debits as
// expenses, each with a fixed confidence.
func suggestMatch(line *Line, props []*property.Property) *SuggestedMatch {
	desc := normalize(line.Description)

	for _, p := range props {
		if !matchesProperty(desc, p) {
			continue
		}

		if line.Type == ledger.TypeCredit {
			return &SuggestedMatch{
				PropertyID:  p.ID,
				Description: "Rent - " + p.Address,
				Type:        MatchRent,
				Confidence:  rentConfidence,
			}
		}

		return &SuggestedMatch{
			PropertyID:  p.ID,
			Description: "Expense - " + p.Address,
			Type:        MatchExpense,
			Confidence:  expenseConfidence,
		}
	}

	return nil
}

// matchesProperty reports whether a normalized line description refers to
// the property: the full address as a substring, a significant address
// token, or the tenant's surname (allowing one character of OCR/typo noise
// on longer tokens).
func matchesProperty(desc string, p *property.Property) bool {
	if addr := normalize(p.Address); addr != "" && strings.Contains(desc, addr) {
		return true
	}

	tokens := strings.Fields(desc)

	for _, tok := range significantTokens(p.Address) {
		if containsToken(tokens, tok) {
			return true
		}
	}

	if surname := tenantSurname(p.TenantName); surname != "" {
		if containsToken(tokens, surname) {
			return true
		}
	}

	return false
}

func containsToken(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}

		if len(tok) >= minTokenLen && len(want) >= minTokenLen &&
			levenshtein.ComputeDistance(tok, want) <= 1 {
			return true
		}
	}

	return false
}

// significantTokens returns the address tokens worth matching on their own:
// long enough and not purely numeric.
func significantTokens(address string) []string {
	var out []string

	for _, tok := range strings.Fields(normalize(address)) {
		if len(tok) < minTokenLen || isNumeric(tok) {
			continue
		}

		out = append(out, tok)
	}

	return out
}

func tenantSurname(name string) string {
	fields := strings.Fields(normalize(name))
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}

func normalize(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ":", " ")

	return strings.TrimSpace(s)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
