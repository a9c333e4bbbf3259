package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

func validParams() ledger.CreateParams {
	return ledger.CreateParams{
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Rent - 1 Test St",
		Type:        ledger.TypeCredit,
		Amount:      100000,
		Reference:   "RCPT-001",
		Account:     ledger.AccountTrust,
		Method:      ledger.MethodEFT,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		mutate    func(p *ledger.CreateParams)
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "MissingDescription",
			mutate:  func(p *ledger.CreateParams) { p.Description = "" },
			wantErr: ledger.ErrValidation,
		},
		{
			name:    "MissingDate",
			mutate:  func(p *ledger.CreateParams) { p.Date = time.Time{} },
			wantErr: ledger.ErrValidation,
		},
		{
			name:    "NegativeAmount",
			mutate:  func(p *ledger.CreateParams) { p.Amount = -100 },
			wantErr: ledger.ErrValidation,
		},
		{
			name:    "GSTExceedsAmount",
			mutate:  func(p *ledger.CreateParams) { p.GST = p.Amount + 1 },
			wantErr: ledger.ErrValidation,
		},
		{
			name:    "BadType",
			mutate:  func(p *ledger.CreateParams) { p.Type = "transfer" },
			wantErr: ledger.ErrValidation,
		},
		{
			name:    "BadAccount",
			mutate:  func(p *ledger.CreateParams) { p.Account = "savings" },
			wantErr: ledger.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			params := validParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}

			svc := ledger.NewService(repo)
			got, err := svc.Create(context.Background(), params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, params.Amount, got.Amount)
		})
	}
}

func TestService_CreateBatch_RejectsWholeBatchOnInvalidEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	bad := validParams()
	bad.Amount = -1

	// No repository call expected: validation fails before any write.
	got, err := svc.CreateBatch(context.Background(), []ledger.CreateParams{validParams(), bad})
	assert.ErrorIs(t, err, ledger.ErrValidation)
	assert.Nil(t, got)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Len(2)).
		Return(nil)

	got, err := svc.CreateBatch(context.Background(), []ledger.CreateParams{validParams(), validParams()})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl))

	got, err := svc.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Reverse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	propID := uuid.New()
	orig := &ledger.Transaction{
		ID:          uuid.New(),
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Rent - 1 Test St",
		Type:        ledger.TypeCredit,
		Amount:      100000,
		Reference:   "RCPT-001",
		Account:     ledger.AccountTrust,
		PropertyID:  &propID,
	}

	repo.EXPECT().GetTransaction(gomock.Any(), orig.ID).Return(orig, nil)

	var created *ledger.Transaction

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			created = tx
			return nil
		})

	rev, err := svc.Reverse(context.Background(), orig.ID, "posted to wrong property")
	require.NoError(t, err)
	require.NotNil(t, created)

	// The reversal offsets the original; the original itself is never touched.
	assert.Equal(t, ledger.TypeDebit, rev.Type)
	assert.Equal(t, orig.Amount, rev.Amount)
	assert.Equal(t, orig.Account, rev.Account)
	assert.Equal(t, orig.PropertyID, rev.PropertyID)
	assert.Equal(t, "REV-RCPT-001", rev.Reference)
	assert.NotEqual(t, orig.ID, rev.ID)
	assert.Contains(t, rev.Description, "Reversal")
	assert.Contains(t, rev.Description, "wrong property")
}

func TestService_Reverse_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetTransaction(gomock.Any(), id).Return(nil, ledger.ErrNotFound)

	_, err := svc.Reverse(context.Background(), id, "")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestService_List_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().
		ListTransactions(gomock.Any(), ledger.ListFilter{}).
		Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), ledger.ListFilter{})
	assert.Error(t, err)
}
