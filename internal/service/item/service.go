// Package item implements the ownership-scoped inventory service.
// Every operation resolves the caller identity first and passes it to the
// repository as a mandatory filter; ownership is never taken from input.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
)

// MaxNameLength bounds item names; the store itself imposes no limit.
const MaxNameLength = 200

type itemRepo interface {
	Insert(ctx context.Context, ownerID int64, name string, quantity int) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	UpdateOne(ctx context.Context, ownerID int64, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)
	DeleteOne(ctx context.Context, ownerID int64, itemID uuid.UUID) error
}

// Service provides inventory item operations scoped to the caller's identity.
// It is stateless; each call is an independent verify-filter-execute pipeline.
type Service struct {
	items itemRepo
	log   *slog.Logger
}

// NewService creates a new item service.
func NewService(log *slog.Logger, items itemRepo) *Service {
	return &Service{
		items: items,
		log:   log.With("service", "item"),
	}
}
