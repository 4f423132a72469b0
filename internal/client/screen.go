// Package client keeps the state of the categories screen in sync with the category store.
package client

import (
	"context"
	"slices"
	"strings"

	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/VladPetriv/category_manager/pkg/logger"
	"golang.org/x/text/unicode/norm"
)

// CategoryAPI provides access to the category store.
//
//go:generate mockery --dir . --name CategoryAPI --output ./mocks
type CategoryAPI interface {
	// List returns all categories.
	List(ctx context.Context) ([]models.Category, error)
	// Create creates a category with the given title.
	Create(ctx context.Context, title string) (*models.Category, error)
	// Delete deletes a category by its id.
	Delete(ctx context.Context, categoryID int) error
}

// Screen holds the visible list of categories and the pending input.
// It is not safe for concurrent use, callers apply results from a single goroutine.
type Screen struct {
	logger *logger.Logger
	api    CategoryAPI

	categories []models.Category
	input      string
}

// NewScreen returns new instance of screen with an empty list.
func NewScreen(logger *logger.Logger, api CategoryAPI) *Screen {
	return &Screen{
		logger: logger,
		api:    api,
	}
}

// API returns the category api used by the screen.
func (s *Screen) API() CategoryAPI {
	return s.api
}

// Categories returns a copy of the visible list.
func (s *Screen) Categories() []models.Category {
	return slices.Clone(s.categories)
}

// Input returns the pending input text.
func (s *Screen) Input() string {
	return s.input
}

// SetInput replaces the pending input text.
func (s *Screen) SetInput(text string) {
	s.input = text
}

// PendingTitle returns normalized input and false when it's blank.
func (s *Screen) PendingTitle() (string, bool) {
	title := norm.NFC.String(strings.TrimSpace(s.input))
	return title, title != ""
}

// Load fetches all categories and replaces the visible list.
func (s *Screen) Load(ctx context.Context) {
	categories, err := s.api.List(ctx)
	s.ApplyLoad(categories, err)
}

// ApplyLoad applies the result of a list request.
func (s *Screen) ApplyLoad(categories []models.Category, err error) {
	if err != nil {
		s.logger.Error().Err(err).Msg("fetch categories")
		return
	}

	s.categories = slices.Clone(categories)
	s.logger.Debug().Int("count", len(categories)).Msg("loaded categories")
}

// Add creates a category from the pending input. Blank input is ignored.
func (s *Screen) Add(ctx context.Context) {
	title, ok := s.PendingTitle()
	if !ok {
		return
	}

	category, err := s.api.Create(ctx, title)
	s.ApplyAdd(category, err)
}

// ApplyAdd applies the result of a create request.
// The input is kept on failure so it can be submitted again.
func (s *Screen) ApplyAdd(category *models.Category, err error) {
	if err != nil {
		s.logger.Error().Err(err).Msg("add category")
		return
	}
	if category == nil {
		return
	}

	idx := s.indexOf(category.ID)
	if idx >= 0 {
		s.categories[idx] = *category
	} else {
		s.categories = append(s.categories, *category)
	}
	s.input = ""

	s.logger.Debug().Interface("category", category).Msg("added category")
}

// Toggle flips the active flag of a visible category.
// The change is local to the screen and is lost on the next load.
func (s *Screen) Toggle(categoryID int) {
	idx := s.indexOf(categoryID)
	if idx < 0 {
		return
	}

	s.categories[idx].Active = !s.categories[idx].Active
}

// Delete removes a category from the store and from the visible list.
func (s *Screen) Delete(ctx context.Context, categoryID int) {
	err := s.api.Delete(ctx, categoryID)
	s.ApplyDelete(categoryID, err)
}

// ApplyDelete applies the result of a delete request.
func (s *Screen) ApplyDelete(categoryID int, err error) {
	if err != nil {
		s.logger.Error().Err(err).Int("categoryID", categoryID).Msg("delete category")
		return
	}

	s.categories = slices.DeleteFunc(s.categories, func(c models.Category) bool {
		return c.ID == categoryID
	})
}

func (s *Screen) indexOf(categoryID int) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool {
		return c.ID == categoryID
	})
}
