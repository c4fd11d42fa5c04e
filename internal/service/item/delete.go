package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
	"github.com/avramenko-dev/inventory-backend/pkg/ctxutil"
)

// Delete removes an item owned by the caller. Success carries no payload.
// A miss and a foreign item both surface as domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, input DeleteItemInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.items.DeleteOne(ctx, ownerID, input.ItemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.Int64("owner_id", ownerID),
		slog.String("item_id", input.ItemID.String()),
	)

	return nil
}
