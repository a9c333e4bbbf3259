package bankfeed_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kestrelpm/trustbooks/internal/bankfeed"
	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

type serviceMocks struct {
	repo      *bankfeed.MockRepository
	ledger    *bankfeed.MockLedger
	props     *bankfeed.MockPropertyLister
	extractor *bankfeed.MockExtractor
}

func newService(ctrl *gomock.Controller) (*bankfeed.Service, serviceMocks) {
	m := serviceMocks{
		repo:      bankfeed.NewMockRepository(ctrl),
		ledger:    bankfeed.NewMockLedger(ctrl),
		props:     bankfeed.NewMockPropertyLister(ctrl),
		extractor: bankfeed.NewMockExtractor(ctrl),
	}

	return bankfeed.NewService(m.repo, m.ledger, m.props, m.extractor), m
}

func TestService_ImportLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	params := []bankfeed.LineParams{
		{
			Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Description: "DEPOSIT: 1 TEST ST",
			Amount:      50000,
			Type:        ledger.TypeCredit,
		},
	}

	m.repo.EXPECT().CreateLines(gomock.Any(), gomock.Len(1)).Return(nil)

	lines, err := svc.ImportLines(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, bankfeed.StatusUnmatched, lines[0].MatchStatus)
	assert.NotEqual(t, uuid.Nil, lines[0].ID)
}

func TestService_ImportStatement_EmptyExtractionImportsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.extractor.EXPECT().
		ExtractTransactions(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	// No CreateLines call: an empty extraction writes nothing.
	lines, err := svc.ImportStatement(context.Background(), []byte("image"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestService_ImportStatement_ExtractionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.extractor.EXPECT().
		ExtractTransactions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("model timeout"))

	_, err := svc.ImportStatement(context.Background(), []byte("image"))
	assert.Error(t, err)
}

func TestService_AutoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	p1 := &property.Property{ID: uuid.New(), Address: "1 Test St"}

	matched := &bankfeed.Line{
		ID:          uuid.New(),
		Description: "DEPOSIT: 1 TEST ST",
		Amount:      50000,
		Type:        ledger.TypeCredit,
		MatchStatus: bankfeed.StatusUnmatched,
	}
	unmatched := &bankfeed.Line{
		ID:          uuid.New(),
		Description: "BANK FEES JULY",
		Amount:      1200,
		Type:        ledger.TypeDebit,
		MatchStatus: bankfeed.StatusUnmatched,
	}

	m.repo.EXPECT().ListLines(gomock.Any(), false).Return([]*bankfeed.Line{matched, unmatched}, nil)
	m.props.EXPECT().ListActive(gomock.Any()).Return([]*property.Property{p1}, nil)
	m.repo.EXPECT().SaveSuggestion(gomock.Any(), matched).Return(nil)

	lines, err := svc.AutoMatch(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NotNil(t, matched.Suggested)
	assert.Equal(t, bankfeed.StatusMatched, matched.MatchStatus)
	assert.Equal(t, p1.ID, matched.Suggested.PropertyID)
	assert.Equal(t, bankfeed.MatchRent, matched.Suggested.Type)
	assert.InDelta(t, 0.95, matched.Suggested.Confidence, 0.001)

	// No match is not an error: the line just stays unmatched.
	assert.Nil(t, unmatched.Suggested)
	assert.Equal(t, bankfeed.StatusUnmatched, unmatched.MatchStatus)
}

func TestService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	propID := uuid.New()
	line := &bankfeed.Line{
		ID:          uuid.New(),
		Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Description: "DEPOSIT: 1 TEST ST",
		Amount:      50000,
		Type:        ledger.TypeCredit,
		MatchStatus: bankfeed.StatusMatched,
		Suggested: &bankfeed.SuggestedMatch{
			PropertyID:  propID,
			Description: "Rent - 1 Test St",
			Type:        bankfeed.MatchRent,
			Confidence:  0.95,
		},
	}

	m.repo.EXPECT().GetLine(gomock.Any(), line.ID).Return(line, nil)

	var created ledger.CreateParams

	m.ledger.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ledger.CreateParams) (*ledger.Transaction, error) {
			created = params
			return &ledger.Transaction{ID: uuid.New()}, nil
		})
	m.repo.EXPECT().MarkProcessed(gomock.Any(), line.ID).Return(nil)

	_, err := svc.Confirm(context.Background(), line.ID)
	require.NoError(t, err)

	assert.Equal(t, ledger.AccountTrust, created.Account)
	assert.Equal(t, ledger.MethodEFT, created.Method)
	assert.Equal(t, ledger.TypeCredit, created.Type)
	assert.Equal(t, int64(50000), created.Amount)
	assert.Equal(t, "Rent - 1 Test St", created.Description)
	require.NotNil(t, created.PropertyID)
	assert.Equal(t, propID, *created.PropertyID)
	assert.True(t, strings.HasPrefix(created.Reference, "BF-"))
}

func TestService_Confirm_ProcessedLineRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	line := &bankfeed.Line{
		ID:          uuid.New(),
		MatchStatus: bankfeed.StatusProcessed,
		Suggested:   &bankfeed.SuggestedMatch{PropertyID: uuid.New()},
	}

	// No ledger call: re-confirming must not create a second transaction.
	m.repo.EXPECT().GetLine(gomock.Any(), line.ID).Return(line, nil)

	_, err := svc.Confirm(context.Background(), line.ID)
	assert.ErrorIs(t, err, bankfeed.ErrAlreadyProcessed)
}

func TestService_Confirm_NoSuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	line := &bankfeed.Line{ID: uuid.New(), MatchStatus: bankfeed.StatusUnmatched}

	m.repo.EXPECT().GetLine(gomock.Any(), line.ID).Return(line, nil)

	_, err := svc.Confirm(context.Background(), line.ID)
	assert.ErrorIs(t, err, bankfeed.ErrNoSuggestedMatch)
}
