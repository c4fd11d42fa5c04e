package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is one inventory record. OwnerID is bound exactly once at creation
// from the verified caller identity and is never accepted from a request
// payload; ID is assigned by the store and immutable.
type Item struct {
	ID        uuid.UUID
	OwnerID   int64
	Name      string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemPatch describes a partial update of an item. Nil fields are left
// unchanged. Only name and quantity are patchable.
type ItemPatch struct {
	Name     *string
	Quantity *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil
}
