package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
	"github.com/avramenko-dev/inventory-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	Create(ctx context.Context, input item.CreateItemInput) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, input item.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, input item.DeleteItemInput) error
}

// ItemHandler serves inventory item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "items")}
}

type createItemRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

type updateItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), item.CreateItemInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toItemResponse(it))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), item.UpdateItemInput{
		ItemID:   itemID,
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// Delete handles DELETE /items/{id}. Success carries no body.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.Delete(r.Context(), item.DeleteItemInput{ItemID: itemID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ItemHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, domain.ErrUnavailable):
		h.log.ErrorContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:        it.ID.String(),
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
