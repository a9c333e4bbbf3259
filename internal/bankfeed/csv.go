package bankfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/kestrelpm/trustbooks/internal/encoding"
	"github.com/kestrelpm/trustbooks/internal/ledger"
)

const (
	colDate   = "date"
	colDesc   = "description"
	colAmount = "amount"
	colType   = "type"
)

var dateLayouts = []string{time.DateOnly, "02/01/2006", "02-01-2006"}

// ParseCSV reads a bank export and produces normalized line params. Banks
// ship exports in assorted encodings and with preamble rows, so the reader
// is sniffed to UTF-8 and the header row is found by landmark rather than
// assumed to be first.
func ParseCSV(r io.Reader) ([]LineParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row with date, description and amount columns found")
	}

	var lines []LineParams

	for _, row := range rows[headerIdx+1:] {
		date, ok := parseDate(cellValue(row, cols[colDate]))
		if !ok {
			// Footer or blank row.
			continue
		}

		desc := cellValue(row, cols[colDesc])
		if desc == "" {
			continue
		}

		cents, err := parseAmount(cellValue(row, cols[colAmount]))
		if err != nil || cents == 0 {
			continue
		}

		lineType := typeFromCells(cents, cellValue(row, cols[colType]))
		if cents < 0 {
			cents = -cents
		}

		lines = append(lines, LineParams{
			Date:        date,
			Description: desc,
			Amount:      cents,
			Type:        lineType,
		})
	}

	return lines, nil
}

// findHeader scans for a row containing at least the date, description and
// amount columns (case-insensitive) and returns the column index map.
func findHeader(rows [][]string) (map[string]int, int) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		_, hasDate := cols[colDate]
		_, hasDesc := cols[colDesc]
		_, hasAmount := cols[colAmount]

		if hasDate && hasDesc && hasAmount {
			if _, ok := cols[colType]; !ok {
				cols[colType] = -1
			}

			return cols, rowIdx
		}
	}

	return nil, 0
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseAmount converts a decimal amount string to signed cents without
// float arithmetic.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(strings.TrimSpace(clean))
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// typeFromCells prefers an explicit type column and falls back to the sign
// of the amount.
func typeFromCells(cents int64, typeCell string) ledger.Type {
	switch strings.ToLower(strings.TrimSpace(typeCell)) {
	case "credit", "cr":
		return ledger.TypeCredit
	case "debit", "dr":
		return ledger.TypeDebit
	}

	if cents < 0 {
		return ledger.TypeDebit
	}

	return ledger.TypeCredit
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
