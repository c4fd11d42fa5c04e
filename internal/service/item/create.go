package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
	"github.com/avramenko-dev/inventory-backend/pkg/ctxutil"
)

// Create persists a new item owned by the caller. Any caller-supplied owner
// information never reaches this layer; the owner is always the verified
// identity from the request context.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	item, err := s.items.Insert(ctx, ownerID, name, quantity)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int64("owner_id", ownerID),
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
	)

	return item, nil
}
