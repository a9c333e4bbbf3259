package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

type transactionResponse struct {
	ID          uuid.UUID      `json:"id"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Type        ledger.Type    `json:"type"`
	Amount      int64          `json:"amount"`
	GST         int64          `json:"gst"`
	Reference   string         `json:"reference,omitempty"`
	Account     ledger.Account `json:"account"`
	PayerPayee  string         `json:"payer_payee,omitempty"`
	Method      ledger.Method  `json:"method,omitempty"`
	PropertyID  *uuid.UUID     `json:"property_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Description: tx.Description,
		Type:        tx.Type,
		Amount:      tx.Amount,
		GST:         tx.GST,
		Reference:   tx.Reference,
		Account:     tx.Account,
		PayerPayee:  tx.PayerPayee,
		Method:      tx.Method,
		PropertyID:  tx.PropertyID,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
