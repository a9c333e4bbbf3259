// Package report builds the end-of-month trust audit report. Generation is
// hard-gated on a balanced reconciliation and never writes anything.
package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnreconciled is returned when a report is requested while the trust
// account does not reconcile.
var ErrUnreconciled = errors.New("trust account is not reconciled")

// CashbookSection summarizes trust cashbook movement for the period. The
// opening balance is zero because the cashbook is recomputed from the full
// transaction history every time.
type CashbookSection struct {
	Opening  int64 `json:"opening"`
	Receipts int64 `json:"receipts"`
	Payments int64 `json:"payments"`
	Closing  int64 `json:"closing"`
}

// BankSection reconciles the statement balance back to the cashbook.
// Outstanding deposits and unpresented cheques are carried as explicit zero
// lines so the statement format matches what auditors expect.
type BankSection struct {
	StatementBalance    int64 `json:"statement_balance"`
	OutstandingDeposits int64 `json:"outstanding_deposits"`
	UnpresentedCheques  int64 `json:"unpresented_cheques"`
	ReconciledBalance   int64 `json:"reconciled_balance"`
}

// TrialBalanceRow is one non-zero property ledger.
type TrialBalanceRow struct {
	PropertyID uuid.UUID `json:"property_id"`
	Address    string    `json:"address"`
	OwnerName  string    `json:"owner_name"`
	Balance    int64     `json:"balance"`
	FeeAccrual int64     `json:"fee_accrual"`
}

type Report struct {
	PeriodEnd   time.Time `json:"period_end"`
	GeneratedAt time.Time `json:"generated_at"`

	Cashbook     CashbookSection   `json:"cashbook"`
	Bank         BankSection       `json:"bank"`
	TrialBalance []TrialBalanceRow `json:"trial_balance"`
	TrialTotal   int64             `json:"trial_total"`

	GSTCollected int64  `json:"gst_collected"`
	Variance     int64  `json:"variance"`
	Result       string `json:"result"`
}
