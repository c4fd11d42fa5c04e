// Package item implements the inventory item repository using PostgreSQL.
// Every query carries the owner's id as a mandatory predicate: a record owned
// by someone else is indistinguishable from one that does not exist.
package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avramenko-dev/inventory-backend/internal/adapter/postgres"
	"github.com/avramenko-dev/inventory-backend/internal/domain"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = "id, owner_id, name, quantity, created_at, updated_at"

// ---------------------------------------------------------------------------
// Raw SQL for fixed-shape queries
// ---------------------------------------------------------------------------

const insertItemSQL = `
INSERT INTO items (owner_id, name, quantity)
VALUES ($1, $2, $3)
RETURNING ` + itemColumns

const listByOwnerSQL = `
SELECT ` + itemColumns + `
FROM items
WHERE owner_id = $1
ORDER BY created_at, id`

const deleteOneSQL = `
DELETE FROM items
WHERE id = $1 AND owner_id = $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new item and returns the stored form. The id is assigned
// by the database; owner_id is taken from the verified caller identity only.
func (r *Repo) Insert(ctx context.Context, ownerID int64, name string, quantity int) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, insertItemSQL, ownerID, name, quantity)

	item, err := scanItem(row)
	if err != nil {
		return nil, mapError(err, "item", uuid.Nil)
	}

	return item, nil
}

// UpdateOne atomically updates the item matching BOTH id and owner_id and
// returns the updated record. Fields with nil patch values are left unchanged.
// Returns domain.ErrNotFound if the item does not exist or belongs to another
// owner — this is the enforcement point that prevents cross-owner edits.
func (r *Repo) UpdateOne(ctx context.Context, ownerID int64, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("items").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": itemID, "owner_id": ownerID}).
		Suffix("RETURNING " + itemColumns)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Quantity != nil {
		builder = builder.Set("quantity", *patch.Quantity)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	item, err := scanItem(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, mapError(err, "item", itemID)
	}

	return item, nil
}

// DeleteOne removes the item matching BOTH id and owner_id.
// Returns domain.ErrNotFound if the item does not exist or belongs to
// another owner.
func (r *Repo) DeleteOne(ctx context.Context, ownerID int64, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteOneSQL, itemID, ownerID)
	if err != nil {
		return mapError(err, "item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByOwner returns all items belonging to an owner in insertion order.
// Returns an empty slice (not nil) when the owner has no items.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, mapError(err, "item", uuid.Nil)
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "item", uuid.Nil)
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

// scanItem reads one item row in itemColumns order.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// connection failures -> domain.ErrUnavailable
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrUnavailable)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case pgErr.Code == "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception class
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrUnavailable)
		case strings.HasPrefix(pgErr.Code, "57"): // operator_intervention (shutdown)
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrUnavailable)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
