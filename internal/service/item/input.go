package item

import (
	"strings"

	"github.com/google/uuid"

	"github.com/avramenko-dev/inventory-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an item.
// Quantity nil means "not provided" and defaults to 0. There is no owner
// field — ownership always comes from the verified identity.
type CreateItemInput struct {
	Name     string
	Quantity *int
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for updating an item.
// Nil fields are left unchanged.
type UpdateItemInput struct {
	ItemID   uuid.UUID
	Name     *string
	Quantity *int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
		if len(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteItemInput holds the parameters for deleting an item.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteItemInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
