package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/batch", h.createBatch)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/reverse", h.reverse)
}

type createTransactionRequest struct {
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Type        ledger.Type    `json:"type"`
	Amount      int64          `json:"amount"`
	GST         int64          `json:"gst"`
	Reference   string         `json:"reference"`
	Account     ledger.Account `json:"account"`
	PayerPayee  string         `json:"payer_payee"`
	Method      ledger.Method  `json:"method"`
	PropertyID  *uuid.UUID     `json:"property_id,omitempty"`
}

func (req createTransactionRequest) toParams() ledger.CreateParams {
	return ledger.CreateParams{
		Date:        req.Date,
		Description: req.Description,
		Type:        req.Type,
		Amount:      req.Amount,
		GST:         req.GST,
		Reference:   req.Reference,
		Account:     req.Account,
		PayerPayee:  req.PayerPayee,
		Method:      req.Method,
		PropertyID:  req.PropertyID,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		if errors.Is(err, ledger.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createBatchRequest struct {
	Transactions []createTransactionRequest `json:"transactions"`
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request) {
	var req createBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]ledger.CreateParams, len(req.Transactions))
	for i, t := range req.Transactions {
		params[i] = t.toParams()
	}

	txs, err := h.svc.CreateBatch(r.Context(), params)
	if err != nil {
		if errors.Is(err, ledger.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("account"); s != "" {
		account := ledger.Account(s)
		filter.Account = &account
	}

	if s := r.URL.Query().Get("property_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PropertyID = &id
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type reverseRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req reverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rev, err := h.svc.Reverse(r.Context(), id, req.Reason)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rev)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
