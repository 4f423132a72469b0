package service

import (
	"context"

	"github.com/VladPetriv/category_manager/internal/models"
)

// Stores represents all stores.
type Stores struct {
	Category CategoryStore
}

// CategoryStore provides functionality for work with category store.
//
//go:generate mockery --dir . --name CategoryStore --output ./mocks
type CategoryStore interface {
	// Create creates a new category in store and fills its ID.
	Create(ctx context.Context, category *models.Category) error
	// List returns all categories from store.
	List(ctx context.Context) ([]models.Category, error)
	// Get returns a category from store by filter, nil when it doesn't exist.
	Get(ctx context.Context, filter GetCategoryFilter) (*models.Category, error)
	// Update applies a partial update and reports whether the category exists.
	Update(ctx context.Context, categoryID int, opts UpdateCategoryOptions) (bool, error)
	// Delete deletes category from store.
	Delete(ctx context.Context, categoryID int) error
}

// GetCategoryFilter represents a filters for GetCategory method.
type GetCategoryFilter struct {
	ID int
}
