package report

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelpm/trustbooks/internal/balance"
	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
	"github.com/kestrelpm/trustbooks/internal/reconcile"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=report
type Reconciler interface {
	Snapshot(ctx context.Context) (reconcile.Snapshot, error)
}

type TransactionLister interface {
	List(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error)
}

type PropertyLister interface {
	ListActive(ctx context.Context) ([]*property.Property, error)
}

type Service struct {
	reconciler Reconciler
	ledger     TransactionLister
	props      PropertyLister
	matcher    balance.Matcher
	now        func() time.Time
}

func NewService(reconciler Reconciler, txs TransactionLister, props PropertyLister) *Service {
	return &Service{
		reconciler: reconciler,
		ledger:     txs,
		props:      props,
		matcher:    balance.DefaultMatcher(),
		now:        time.Now,
	}
}

// Generate builds the end-of-month audit report for the period ending at
// periodEnd. It refuses with ErrUnreconciled unless the current three-way
// reconciliation is balanced, and it performs no writes: generating the same
// report twice gives the same figures.
func (s *Service) Generate(ctx context.Context, periodEnd time.Time) (*Report, error) {
	snap, err := s.reconciler.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reconciliation snapshot: %w", err)
	}

	if snap.Status != reconcile.StatusBalanced {
		return nil, ErrUnreconciled
	}

	account := ledger.AccountTrust

	txs, err := s.ledger.List(ctx, ledger.ListFilter{Account: &account, EndDate: &periodEnd})
	if err != nil {
		return nil, fmt.Errorf("listing trust transactions: %w", err)
	}

	props, err := s.props.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	var receipts, payments, gst int64

	for _, tx := range txs {
		if tx.Type == ledger.TypeCredit {
			receipts += tx.Amount
			gst += tx.GST
		} else {
			payments += tx.Amount
		}
	}

	rows, trialTotal := s.trialBalance(txs, props)

	rpt := &Report{
		PeriodEnd:   periodEnd,
		GeneratedAt: s.now(),
		Cashbook: CashbookSection{
			Opening:  0,
			Receipts: receipts,
			Payments: payments,
			Closing:  receipts - payments,
		},
		Bank: BankSection{
			StatementBalance:    snap.BankBalance,
			OutstandingDeposits: 0,
			UnpresentedCheques:  0,
			ReconciledBalance:   snap.BankBalance,
		},
		TrialBalance: rows,
		TrialTotal:   trialTotal,
		GSTCollected: gst,
		Variance:     snap.Variance,
		Result: fmt.Sprintf("Trust account reconciled as at %s",
			periodEnd.Format("2 January 2006")),
	}

	return rpt, nil
}

// trialBalance lists the non-zero property ledgers with the management fee
// accrued on each property's rent receipts. The accrual is informational
// only; no fee transaction is written.
func (s *Service) trialBalance(txs []*ledger.Transaction, props []*property.Property) ([]TrialBalanceRow, int64) {
	var (
		rows  []TrialBalanceRow
		total int64
	)

	for _, p := range props {
		bal := balance.Ledger(txs, p, s.matcher)
		if bal == 0 {
			continue
		}

		var rent int64

		for _, tx := range txs {
			if tx.Type == ledger.TypeCredit && tx.Account == ledger.AccountTrust && s.matcher.Matches(tx, p) {
				rent += tx.Amount
			}
		}

		rows = append(rows, TrialBalanceRow{
			PropertyID: p.ID,
			Address:    p.Address,
			OwnerName:  p.OwnerName,
			Balance:    bal,
			FeeAccrual: p.ManagementFee(rent),
		})

		total += bal
	}

	return rows, total
}
