package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type is the direction of a transaction.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Account identifies which bank account a transaction belongs to. Only
// trust-account transactions participate in trust reconciliation.
type Account string

const (
	AccountTrust   Account = "trust"
	AccountGeneral Account = "general"
)

// Method is the payment method recorded against a transaction.
type Method string

const (
	MethodEFT    Method = "eft"
	MethodBPAY   Method = "bpay"
	MethodCheque Method = "cheque"
	MethodDDebit Method = "d-debit"
	MethodCash   Method = "cash"
)

var (
	ErrNotFound   = errors.New("transaction not found")
	ErrValidation = errors.New("invalid transaction")
)

// Transaction is a single immutable ledger record. Amounts are integer
// cents; Type carries the sign. Once created a transaction is never
// mutated or deleted; corrections are offsetting transactions.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Type        Type
	Amount      int64 // cents, always >= 0
	GST         int64 // cents, GST component of Amount, 0 if untracked
	Reference   string
	Account     Account
	PayerPayee  string
	Method      Method
	PropertyID  *uuid.UUID
	CreatedAt   time.Time
}
