package bankfeed

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/bankfeed"
	"github.com/kestrelpm/trustbooks/internal/ledger"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	svc *bankfeed.Service
}

func NewHandler(svc *bankfeed.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.worklist)
	r.Post("/import", h.importCSV)
	r.Post("/statement", h.importStatement)
	r.Post("/automatch", h.autoMatch)
	r.Post("/{id}/confirm", h.confirm)
}

type suggestionResponse struct {
	PropertyID  uuid.UUID          `json:"property_id"`
	Description string             `json:"description"`
	Type        bankfeed.MatchType `json:"type"`
	Confidence  float64            `json:"confidence"`
}

type lineResponse struct {
	ID          uuid.UUID            `json:"id"`
	Date        time.Time            `json:"date"`
	Description string               `json:"description"`
	Amount      int64                `json:"amount"`
	Type        ledger.Type          `json:"type"`
	MatchStatus bankfeed.MatchStatus `json:"match_status"`
	Suggested   *suggestionResponse  `json:"suggested,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type importResponse struct {
	Imported int            `json:"imported"`
	Lines    []lineResponse `json:"lines"`
}

func toResponse(line *bankfeed.Line) lineResponse {
	resp := lineResponse{
		ID:          line.ID,
		Date:        line.Date,
		Description: line.Description,
		Amount:      line.Amount,
		Type:        line.Type,
		MatchStatus: line.MatchStatus,
		CreatedAt:   line.CreatedAt,
	}

	if line.Suggested != nil {
		resp.Suggested = &suggestionResponse{
			PropertyID:  line.Suggested.PropertyID,
			Description: line.Suggested.Description,
			Type:        line.Suggested.Type,
			Confidence:  line.Suggested.Confidence,
		}
	}

	return resp
}

func toResponseList(lines []*bankfeed.Line) []lineResponse {
	resp := make([]lineResponse, len(lines))
	for i, line := range lines {
		resp[i] = toResponse(line)
	}

	return resp
}

func (h *Handler) worklist(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.Worklist(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(lines)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	lines, err := h.svc.ImportCSV(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeImportResponse(w, lines)
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "reading upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	lines, err := h.svc.ImportStatement(r.Context(), image)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeImportResponse(w, lines)
}

func writeImportResponse(w http.ResponseWriter, lines []*bankfeed.Line) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := importResponse{
		Imported: len(lines),
		Lines:    toResponseList(lines),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) autoMatch(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.AutoMatch(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(lines)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Reference     string    `json:"reference"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Confirm(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, bankfeed.ErrNotFound):
			http.Error(w, "bank line not found", http.StatusNotFound)
		case errors.Is(err, bankfeed.ErrAlreadyProcessed):
			http.Error(w, "bank line already processed", http.StatusConflict)
		case errors.Is(err, bankfeed.ErrNoSuggestedMatch):
			http.Error(w, "bank line has no suggested match", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(confirmResponse{
		TransactionID: tx.ID,
		Reference:     tx.Reference,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
