package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
	"github.com/avramenko-dev/inventory-backend/pkg/ctxutil"
)

// Update patches an item owned by the caller. A miss and a foreign item both
// surface as domain.ErrNotFound; the service cannot and must not tell them
// apart.
func (s *Service) Update(ctx context.Context, input UpdateItemInput) (*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.ItemPatch{Quantity: input.Quantity}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		patch.Name = &trimmed
	}

	item, err := s.items.UpdateOne(ctx, ownerID, input.ItemID, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.InfoContext(ctx, "item updated",
		slog.Int64("owner_id", ownerID),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}
