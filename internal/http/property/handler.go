package property

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kestrelpm/trustbooks/internal/property"
)

type Handler struct {
	svc *property.Service
}

func NewHandler(svc *property.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.archive)
}

type createPropertyRequest struct {
	Address    string `json:"address"`
	OwnerName  string `json:"owner_name"`
	FeeBps     int    `json:"fee_bps"`
	TenantName string `json:"tenant_name"`
}

type propertyResponse struct {
	ID         uuid.UUID  `json:"id"`
	Address    string     `json:"address"`
	OwnerName  string     `json:"owner_name"`
	FeeBps     int        `json:"fee_bps"`
	TenantName string     `json:"tenant_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

func toResponse(p *property.Property) propertyResponse {
	return propertyResponse{
		ID:         p.ID,
		Address:    p.Address,
		OwnerName:  p.OwnerName,
		FeeBps:     p.FeeBps,
		TenantName: p.TenantName,
		CreatedAt:  p.CreatedAt,
		ArchivedAt: p.ArchivedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), property.CreateParams{
		Address:    req.Address,
		OwnerName:  req.OwnerName,
		FeeBps:     req.FeeBps,
		TenantName: req.TenantName,
	})
	if err != nil {
		if errors.Is(err, property.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		props []*property.Property
		err   error
	)

	if r.URL.Query().Get("include_archived") == "true" {
		props, err = h.svc.ListAll(r.Context())
	} else {
		props, err = h.svc.ListActive(r.Context())
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]propertyResponse, len(props))
	for i, p := range props {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Archive(r.Context(), id); err != nil {
		if errors.Is(err, property.ErrNotFound) {
			http.Error(w, "property not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
