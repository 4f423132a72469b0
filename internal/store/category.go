package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/VladPetriv/category_manager/internal/service"
	"github.com/VladPetriv/category_manager/pkg/database"
)

type categoryStore struct {
	*database.PostgreSQL
}

var _ service.CategoryStore = (*categoryStore)(nil)

var tableCategories = "categories"

// NewCategory returns a new instance of the category store.
func NewCategory(db *database.PostgreSQL) *categoryStore {
	return &categoryStore{
		db,
	}
}

func (c *categoryStore) Create(ctx context.Context, category *models.Category) error {
	return c.DB.QueryRowxContext(
		ctx,
		"INSERT INTO categories (title, active) VALUES ($1, $2) RETURNING id, active;",
		category.Title, category.Active,
	).Scan(&category.ID, &category.Active)
}

func (c *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "title", "active").
		From(tableCategories).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	var categories []models.Category
	err = c.DB.SelectContext(ctx, &categories, query, args...)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *categoryStore) Get(ctx context.Context, filter service.GetCategoryFilter) (*models.Category, error) {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "title", "active").
		From(tableCategories).
		Where(sq.Eq{"id": filter.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var category models.Category
	err = c.DB.GetContext(ctx, &category, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &category, nil
}

func (c *categoryStore) Update(ctx context.Context, categoryID int, opts service.UpdateCategoryOptions) (bool, error) {
	stmt := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update(tableCategories).
		Where(sq.Eq{"id": categoryID})

	if opts.Title != nil {
		stmt = stmt.Set("title", *opts.Title)
	}
	if opts.Active != nil {
		stmt = stmt.Set("active", *opts.Active)
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return false, fmt.Errorf("build update category query: %w", err)
	}

	result, err := c.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (c *categoryStore) Delete(ctx context.Context, categoryID int) error {
	_, err := c.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1;", categoryID)
	return err
}
