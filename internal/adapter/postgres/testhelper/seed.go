package testhelper

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
)

// ownerSeq hands out distinct owner ids so parallel tests sharing the
// container never observe each other's items.
var ownerSeq atomic.Int64

func init() {
	ownerSeq.Store(1000)
}

// NextOwnerID returns a fresh owner id unique within the test run.
func NextOwnerID() int64 {
	return ownerSeq.Add(1)
}

// SeedItem inserts an item directly and returns the stored form.
func SeedItem(t *testing.T, pool *pgxpool.Pool, ownerID int64, name string, quantity int) domain.Item {
	t.Helper()
	ctx := context.Background()

	var item domain.Item
	err := pool.QueryRow(ctx,
		`INSERT INTO items (owner_id, name, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, owner_id, name, quantity, created_at, updated_at`,
		ownerID, name, quantity,
	).Scan(&item.ID, &item.OwnerID, &item.Name, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// CountItems returns the number of items stored for an owner.
func CountItems(t *testing.T, pool *pgxpool.Pool, ownerID int64) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM items WHERE owner_id = $1`, ownerID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("testhelper: CountItems: %v", err)
	}

	return count
}
