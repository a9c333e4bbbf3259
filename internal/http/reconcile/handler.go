package reconcile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelpm/trustbooks/internal/auth"
	"github.com/kestrelpm/trustbooks/internal/reconcile"
)

type Handler struct {
	svc *reconcile.Service
}

func NewHandler(svc *reconcile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.snapshot)
	r.Post("/unlock", h.unlock)
	r.Put("/balance", h.setBalance)
}

type snapshotResponse struct {
	Cashbook       int64            `json:"cashbook"`
	LedgersSum     int64            `json:"ledgers_sum"`
	BankBalance    int64            `json:"bank_balance"`
	BankBalanceSet bool             `json:"bank_balance_set"`
	Variance       int64            `json:"variance"`
	Status         reconcile.Status `json:"status"`
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := snapshotResponse{
		Cashbook:       snap.Cashbook,
		LedgersSum:     snap.LedgersSum,
		BankBalance:    snap.BankBalance,
		BankBalanceSet: snap.BankBalanceSet,
		Variance:       snap.Variance,
		Status:         snap.Status,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type unlockRequest struct {
	Password string `json:"password"`
}

type unlockResponse struct {
	Token string `json:"token"`
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.svc.Unlock(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, reconcile.ErrLockedOut):
			http.Error(w, "too many failed attempts", http.StatusTooManyRequests)
		case errors.Is(err, auth.ErrBadCredentials):
			http.Error(w, "invalid password", http.StatusUnauthorized)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(unlockResponse{Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setBalanceRequest struct {
	Token   string `json:"token"`
	Balance int64  `json:"balance"`
}

func (h *Handler) setBalance(w http.ResponseWriter, r *http.Request) {
	var req setBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetBankBalance(r.Context(), req.Token, req.Balance); err != nil {
		if errors.Is(err, auth.ErrBadToken) {
			http.Error(w, "invalid or expired edit token", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
