package bankfeed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelpm/trustbooks/internal/ledger"
	"github.com/kestrelpm/trustbooks/internal/property"
)

func TestSuggestMatch(t *testing.T) {
	p1 := &property.Property{ID: uuid.New(), Address: "1 Test St", TenantName: "Sarah Connor"}
	p2 := &property.Property{ID: uuid.New(), Address: "42 Wallaby Way", TenantName: "P. Sherman"}
	props := []*property.Property{p1, p2}

	type testCase struct {
		name     string
		line     Line
		wantProp *uuid.UUID
		wantType MatchType
		wantConf float64
	}

	tests := []testCase{
		{
			name:     "CreditWithFullAddress",
			line:     Line{Description: "DEPOSIT: 1 TEST ST", Amount: 50000, Type: ledger.TypeCredit},
			wantProp: &p1.ID,
			wantType: MatchRent,
			wantConf: 0.95,
		},
		{
			name:     "DebitWithAddressToken",
			line:     Line{Description: "PLUMBFIX WALLABY JOB 8812", Amount: 30000, Type: ledger.TypeDebit},
			wantProp: &p2.ID,
			wantType: MatchExpense,
			wantConf: 0.85,
		},
		{
			name:     "CreditWithTenantSurname",
			line:     Line{Description: "EFT CONNOR S RENT", Amount: 45000, Type: ledger.TypeCredit},
			wantProp: &p1.ID,
			wantType: MatchRent,
			wantConf: 0.95,
		},
		{
			name:     "TenantSurnameOneTypo",
			line:     Line{Description: "EFT SHERMANN RENT WK 12", Amount: 45000, Type: ledger.TypeCredit},
			wantProp: &p2.ID,
			wantType: MatchRent,
			wantConf: 0.95,
		},
		{
			name: "NoMatch",
			line: Line{Description: "BANK FEES JULY", Amount: 1200, Type: ledger.TypeDebit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestMatch(&tt.line, props)

			if tt.wantProp == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, *tt.wantProp, got.PropertyID)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}

// Ties between equally plausible properties go to the first one in registry
// order.
func TestSuggestMatch_FirstPropertyWinsTies(t *testing.T) {
	a := &property.Property{ID: uuid.New(), Address: "7 Acacia Ave"}
	b := &property.Property{ID: uuid.New(), Address: "9 Acacia Ave"}

	line := &Line{Description: "PAYMENT ACACIA AVE", Amount: 100, Type: ledger.TypeCredit}

	got := suggestMatch(line, []*property.Property{a, b})
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.PropertyID)

	got = suggestMatch(line, []*property.Property{b, a})
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.PropertyID)
}

func TestSignificantTokens_SkipsNumbersAndShortWords(t *testing.T) {
	assert.Equal(t, []string{"TEST"}, significantTokens("1 Test St"))
	assert.Equal(t, []string{"WALLABY"}, significantTokens("42 Wallaby Way"))
	assert.Empty(t, significantTokens("12 A St"))
}
