package service

import (
	"context"

	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/VladPetriv/category_manager/pkg/errs"
)

// Services contains all services.
type Services struct {
	Category CategoryService
}

var (
	// ErrCategoryNotFound happens when category doesn't exist in store.
	ErrCategoryNotFound = errs.New("category not found")
	// ErrCategoryTitleRequired happens when category title is blank.
	ErrCategoryTitleRequired = errs.New("category title is required")
	// ErrCategoryTitleTooLong happens when category title doesn't fit into store.
	ErrCategoryTitleTooLong = errs.New("category title is too long")
)

// MaxCategoryTitleLength is the maximum count of characters in category title.
const MaxCategoryTitleLength = 255

// CategoryService provides functionality for managing categories.
//
//go:generate mockery --dir . --name CategoryService --output ./mocks
type CategoryService interface {
	// CreateCategory creates a new category and returns it with assigned ID.
	CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*models.Category, error)
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// GetCategory returns a category by its ID.
	GetCategory(ctx context.Context, categoryID int) (*models.Category, error)
	// UpdateCategory applies a partial update and returns refreshed category.
	UpdateCategory(ctx context.Context, categoryID int, opts UpdateCategoryOptions) (*models.Category, error)
	// DeleteCategory deletes a category, missing ID is not an error.
	DeleteCategory(ctx context.Context, categoryID int) error
}

// CreateCategoryOptions represents input options for CreateCategory method.
type CreateCategoryOptions struct {
	Title string `json:"title"`
}

// UpdateCategoryOptions represents input options for UpdateCategory method.
// Nil fields are left untouched.
type UpdateCategoryOptions struct {
	Title  *string `json:"title"`
	Active *bool   `json:"active"`
}

// IsEmpty reports whether there is nothing to update.
func (u UpdateCategoryOptions) IsEmpty() bool {
	return u.Title == nil && u.Active == nil
}
