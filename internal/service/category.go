package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/VladPetriv/category_manager/pkg/logger"
)

type categoryService struct {
	logger        *logger.Logger
	categoryStore CategoryStore
}

var _ CategoryService = (*categoryService)(nil)

// NewCategory returns new instance of category service.
func NewCategory(logger *logger.Logger, categoryStore CategoryStore) *categoryService {
	return &categoryService{
		logger:        logger,
		categoryStore: categoryStore,
	}
}

func (c categoryService) CreateCategory(ctx context.Context, opts CreateCategoryOptions) (*models.Category, error) {
	logger := c.logger
	logger.Debug().Interface("opts", opts).Msg("got args")

	title, err := validateTitle(opts.Title)
	if err != nil {
		logger.Info().Err(err).Msg("category title is not valid")
		return nil, err
	}

	category := &models.Category{
		Title: title,
	}
	logger.Debug().Interface("category", category).Msg("built category")

	err = c.categoryStore.Create(ctx, category)
	if err != nil {
		logger.Error().Err(err).Msg("create category in store")
		return nil, fmt.Errorf("create category in store: %w", err)
	}

	logger.Info().Interface("category", category).Msg("category created")
	return category, nil
}

func (c categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	logger := c.logger

	categories, err := c.categoryStore.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("list categories from store")
		return nil, fmt.Errorf("list categories from store: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}

	logger.Debug().Int("count", len(categories)).Msg("got categories")
	return categories, nil
}

func (c categoryService) GetCategory(ctx context.Context, categoryID int) (*models.Category, error) {
	logger := c.logger
	logger.Debug().Int("categoryID", categoryID).Msg("got args")

	category, err := c.categoryStore.Get(ctx, GetCategoryFilter{ID: categoryID})
	if err != nil {
		logger.Error().Err(err).Msg("get category from store")
		return nil, fmt.Errorf("get category from store: %w", err)
	}
	if category == nil {
		logger.Info().Int("categoryID", categoryID).Msg("category not found")
		return nil, ErrCategoryNotFound
	}

	logger.Debug().Interface("category", category).Msg("got category")
	return category, nil
}

func (c categoryService) UpdateCategory(ctx context.Context, categoryID int, opts UpdateCategoryOptions) (*models.Category, error) {
	logger := c.logger
	logger.Debug().Int("categoryID", categoryID).Interface("opts", opts).Msg("got args")

	if opts.Title != nil {
		title, err := validateTitle(*opts.Title)
		if err != nil {
			logger.Info().Err(err).Msg("category title is not valid")
			return nil, err
		}
		opts.Title = &title
	}

	if !opts.IsEmpty() {
		exists, err := c.categoryStore.Update(ctx, categoryID, opts)
		if err != nil {
			logger.Error().Err(err).Msg("update category in store")
			return nil, fmt.Errorf("update category in store: %w", err)
		}
		if !exists {
			logger.Info().Int("categoryID", categoryID).Msg("category not found")
			return nil, ErrCategoryNotFound
		}
	}

	return c.GetCategory(ctx, categoryID)
}

func (c categoryService) DeleteCategory(ctx context.Context, categoryID int) error {
	logger := c.logger
	logger.Debug().Int("categoryID", categoryID).Msg("got args")

	err := c.categoryStore.Delete(ctx, categoryID)
	if err != nil {
		logger.Error().Err(err).Msg("delete category from store")
		return fmt.Errorf("delete category from store: %w", err)
	}

	logger.Info().Int("categoryID", categoryID).Msg("category deleted")
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrCategoryTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxCategoryTitleLength {
		return "", ErrCategoryTitleTooLong
	}

	return title, nil
}
