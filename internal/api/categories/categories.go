// Package categories is an HTTP client for the category store API.
package categories

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/VladPetriv/category_manager/internal/client"
	"github.com/VladPetriv/category_manager/internal/models"
	"resty.dev/v3"
)

const (
	categoriesPath  = "/categories"
	jsonContentType = "application/json"
)

var errMissingCategoryID = errors.New("created category has no id")

type categoriesAPI struct {
	httpClient *resty.Client
}

var _ client.CategoryAPI = (*categoriesAPI)(nil)

// New creates a new instance of categories api.
func New(apiURL string, timeout time.Duration) *categoriesAPI {
	httpClient := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &categoriesAPI{
		httpClient: httpClient,
	}
}

func (c *categoriesAPI) List(ctx context.Context) ([]models.Category, error) {
	var result []models.Category

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("send list categories request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("could not list categories(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}
	err = checkJSONResponse(response)
	if err != nil {
		return nil, fmt.Errorf("parse list categories response: %w", err)
	}

	return result, nil
}

func (c *categoriesAPI) Create(ctx context.Context, title string) (*models.Category, error) {
	var result models.Category

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(createCategoryRequest{Title: title}).
		SetResult(&result).
		Post(categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("send create category request: %w", err)
	}
	if response.StatusCode() != http.StatusCreated && response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("could not create category(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}
	err = checkJSONResponse(response)
	if err != nil {
		return nil, fmt.Errorf("parse create category response: %w", err)
	}
	if result.ID == 0 {
		return nil, errMissingCategoryID
	}

	return &result, nil
}

func (c *categoriesAPI) Delete(ctx context.Context, categoryID int) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		Delete(categoriesPath + "/" + strconv.Itoa(categoryID))
	if err != nil {
		return fmt.Errorf("send delete category request: %w", err)
	}
	if response.StatusCode() != http.StatusNoContent && response.StatusCode() != http.StatusOK {
		return fmt.Errorf("could not delete category(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}

	return nil
}

// checkJSONResponse makes sure the result was decoded, resty leaves it untouched for non-json bodies.
func checkJSONResponse(response *resty.Response) error {
	contentType := response.Header().Get("Content-Type")

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != jsonContentType {
		return fmt.Errorf("unexpected content type %q(body:%s)", contentType, response.String())
	}

	return nil
}
