package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("property not found")
	ErrValidation = errors.New("invalid property")
)

// Property is a managed property. Each property is an independent
// sub-ledger key; its address and tenant name double as match keys for
// bank-feed lines that arrive without a property reference.
type Property struct {
	ID         uuid.UUID
	Address    string
	OwnerName  string
	FeeBps     int // management fee in basis points (850 = 8.5%)
	TenantName string
	CreatedAt  time.Time
	ArchivedAt *time.Time
}

// Archived reports whether the property has been removed from the active
// registry. Archiving never touches the property's ledger transactions.
func (p *Property) Archived() bool {
	return p.ArchivedAt != nil
}

// ManagementFee returns the agency fee in cents for the given rent amount,
// rounded half-up to the nearest cent.
func (p *Property) ManagementFee(rentCents int64) int64 {
	return (rentCents*int64(p.FeeBps) + 5000) / 10000
}
