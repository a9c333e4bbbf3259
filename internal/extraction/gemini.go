// Package extraction turns scanned bank statements into bank-feed line
// params using a vision model.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/kestrelpm/trustbooks/internal/bankfeed"
	"github.com/kestrelpm/trustbooks/internal/ledger"
)

const statementPrompt = "You are a bank statement parser for Australian bank statements.\n\n" +
	"Task:\n" +
	"- Parse ALL transactions visible in the attached statement image.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a JSON array of objects.\n\n" +
	"Each object must have these fields:\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"description\": string\n" +
	"- \"amount\": number (always positive)\n" +
	"- \"type\": string, either \"credit\" (money in) or \"debit\" (money out)\n\n" +
	"Rules:\n" +
	"- If the statement has separate deposit/withdrawal columns, use them to set \"type\".\n" +
	"- Skip balance rows, headings and totals.\n" +
	"- If no transactions are visible, output an empty array.\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Do NOT use ```json or any Markdown.\n" +
	"Output must begin with \"[\" and end with \"]\".\n"

type statementRow struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

// Gemini extracts statement lines with the Gemini API. Transient API
// failures are retried with exponential backoff before giving up.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) ExtractTransactions(ctx context.Context, image []byte) ([]bankfeed.LineParams, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: statementPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: "image/png",
						Data:     image,
					},
				},
			},
		},
	}

	var raw string

	op := func() error {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			return fmt.Errorf("generating content: %w", err)
		}

		raw = resp.Text()
		if raw == "" {
			return fmt.Errorf("empty response from model")
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}

	return decodeStatementJSON(raw)
}

// decodeStatementJSON parses the model output into line params. The model is
// told not to use Markdown but fences still show up, so they are stripped
// before decoding.
func decodeStatementJSON(raw string) ([]bankfeed.LineParams, error) {
	var rows []statementRow
	if err := json.Unmarshal([]byte(stripFences(raw)), &rows); err != nil {
		return nil, fmt.Errorf("decoding model output: %w", err)
	}

	var params []bankfeed.LineParams

	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			continue
		}

		cents := row.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		if cents <= 0 || row.Description == "" {
			continue
		}

		lineType, ok := parseLineType(row.Type)
		if !ok {
			continue
		}

		params = append(params, bankfeed.LineParams{
			Date:        date,
			Description: row.Description,
			Amount:      cents,
			Type:        lineType,
		})
	}

	return params, nil
}

func parseLineType(s string) (ledger.Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit":
		return ledger.TypeCredit, true
	case "debit":
		return ledger.TypeDebit, true
	}

	return "", false
}

// stripFences removes Markdown code fences and keeps only the outermost
// JSON array when the model wraps it in prose.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}

		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}

		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = s[start : end+1]
		}
	}

	return s
}
