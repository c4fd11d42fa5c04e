package item

import (
	"context"
	"fmt"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
	"github.com/avramenko-dev/inventory-backend/pkg/ctxutil"
)

// List returns all items owned by the caller. An empty inventory is a
// successful result, never an error.
func (s *Service) List(ctx context.Context) ([]*domain.Item, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}
