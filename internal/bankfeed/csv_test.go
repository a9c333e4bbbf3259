package bankfeed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Acme Bank - Transaction Export",
		"Account: 012-345 6789",
		"",
		"Date,Description,Amount,Type",
		"2024-03-04,DEPOSIT: 1 TEST ST,\"1,250.00\",Credit",
		"05/03/2024,PLUMBFIX WALLABY JOB 8812,$300.00,Debit",
		"2024-03-06,BANK FEES,-12.50,",
		"Closing balance,,,",
	}, "\n")

	lines, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), lines[0].Date)
	assert.Equal(t, "DEPOSIT: 1 TEST ST", lines[0].Description)
	assert.Equal(t, int64(125000), lines[0].Amount)
	assert.Equal(t, ledger.TypeCredit, lines[0].Type)

	// Non-ISO date layout.
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), lines[1].Date)
	assert.Equal(t, int64(30000), lines[1].Amount)
	assert.Equal(t, ledger.TypeDebit, lines[1].Type)

	// No type column value: the sign decides, the amount is stored unsigned.
	assert.Equal(t, int64(1250), lines[2].Amount)
	assert.Equal(t, ledger.TypeDebit, lines[2].Type)
}

func TestParseCSV_NoTypeColumn(t *testing.T) {
	input := "Date,Description,Amount\n2024-03-04,RENT RECEIVED,450.00\n2024-03-05,REPAIRS,-120.00\n"

	lines, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, ledger.TypeCredit, lines[0].Type)
	assert.Equal(t, ledger.TypeDebit, lines[1].Type)
}

func TestParseCSV_MissingHeader(t *testing.T) {
	input := "one,two,three\n1,2,3\n"

	_, err := ParseCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseCSV_SkipsZeroAndMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount",
		"2024-03-04,PENDING HOLD,0.00",
		"not-a-date,JUNK ROW,50.00",
		"2024-03-05,,50.00",
		"2024-03-06,REAL ROW,50.00",
	}, "\n")

	lines, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "REAL ROW", lines[0].Description)
}

func TestParseCSV_Windows1252Input(t *testing.T) {
	raw := "Date,Description,Amount\n2024-03-04,CAFÉ LEASE,99.00\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(raw)
	require.NoError(t, err)

	lines, err := ParseCSV(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "CAFÉ LEASE", lines[0].Description)
	assert.Equal(t, int64(9900), lines[0].Amount)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1,250.00", 125000},
		{"$300.00", 30000},
		{"-12.50", -1250},
		{"0.01", 1},
		{"450", 45000},
	}

	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseAmount("not a number")
	assert.Error(t, err)
}
