package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelpm/trustbooks/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/eom", h.generate)
}

type generateRequest struct {
	PeriodEnd string `json:"period_end"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	periodEnd, err := time.Parse(time.DateOnly, req.PeriodEnd)
	if err != nil {
		http.Error(w, "period_end must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}

	rpt, err := h.svc.Generate(r.Context(), periodEnd)
	if err != nil {
		if errors.Is(err, report.ErrUnreconciled) {
			http.Error(w, "trust account is not reconciled", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rpt); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
