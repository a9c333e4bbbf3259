package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

func TestDecodeStatementJSON(t *testing.T) {
	raw := `[
		{"date": "2024-03-04", "description": "DEPOSIT: 1 TEST ST", "amount": 500.00, "type": "credit"},
		{"date": "2024-03-05", "description": "PLUMBFIX", "amount": 120.50, "type": "debit"}
	]`

	params, err := decodeStatementJSON(raw)
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), params[0].Date)
	assert.Equal(t, "DEPOSIT: 1 TEST ST", params[0].Description)
	assert.Equal(t, int64(50000), params[0].Amount)
	assert.Equal(t, ledger.TypeCredit, params[0].Type)

	assert.Equal(t, int64(12050), params[1].Amount)
	assert.Equal(t, ledger.TypeDebit, params[1].Type)
}

func TestDecodeStatementJSON_FencedOutput(t *testing.T) {
	raw := "```json\n[{\"date\": \"2024-03-04\", \"description\": \"RENT\", \"amount\": 450, \"type\": \"credit\"}]\n```"

	params, err := decodeStatementJSON(raw)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(45000), params[0].Amount)
}

func TestDecodeStatementJSON_SkipsBadRows(t *testing.T) {
	raw := `[
		{"date": "bad", "description": "X", "amount": 1, "type": "credit"},
		{"date": "2024-03-04", "description": "", "amount": 1, "type": "credit"},
		{"date": "2024-03-04", "description": "ZERO", "amount": 0, "type": "credit"},
		{"date": "2024-03-04", "description": "WEIRD TYPE", "amount": 1, "type": "transfer"},
		{"date": "2024-03-04", "description": "KEEP", "amount": 1, "type": "debit"}
	]`

	params, err := decodeStatementJSON(raw)
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "KEEP", params[0].Description)
}

func TestDecodeStatementJSON_EmptyArray(t *testing.T) {
	params, err := decodeStatementJSON("[]")
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestDecodeStatementJSON_NotJSON(t *testing.T) {
	_, err := decodeStatementJSON("I could not read the statement.")
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `[1]`, stripFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("Here you go:\n[1]\nHope that helps!"))
	assert.Equal(t, `[1]`, stripFences("[1]"))
}
