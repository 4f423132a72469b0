package categories_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VladPetriv/category_manager/internal/api/categories"
	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server.URL
}

func writeJSON(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = io.WriteString(w, body)
}

func writeHTML(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = io.WriteString(w, body)
}

func TestCategoriesAPI_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCases := [...]struct {
		desc        string
		handler     http.HandlerFunc
		expected    []models.Category
		expectError bool
	}{
		{
			desc: "positive: listed categories",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/categories", r.URL.Path)

				writeJSON(w, http.StatusOK, `[{"id":1,"title":"Food","active":false},{"id":2,"title":"Clothing","active":true}]`)
			},
			expected: []models.Category{
				{ID: 1, Title: "Food"},
				{ID: 2, Title: "Clothing", Active: true},
			},
		},
		{
			desc: "negative: unexpected status code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusInternalServerError, `{"message":"internal server error"}`)
			},
			expectError: true,
		},
		{
			desc: "negative: json content type with invalid body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `<html>oops</html>`)
			},
			expectError: true,
		},
		{
			desc: "negative: html page with ok status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeHTML(w, http.StatusOK, `<html>proxy error page</html>`)
			},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			api := categories.New(newTestServer(t, tc.handler), time.Second)

			actual, err := api.List(ctx)
			if tc.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestCategoriesAPI_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCases := [...]struct {
		desc        string
		handler     http.HandlerFunc
		expected    *models.Category
		expectError bool
	}{
		{
			desc: "positive: created category",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/categories", r.URL.Path)

				var body map[string]string
				err := json.NewDecoder(r.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, map[string]string{"title": "Food"}, body)

				writeJSON(w, http.StatusCreated, `{"id":1,"title":"Food","active":false}`)
			},
			expected: &models.Category{ID: 1, Title: "Food"},
		},
		{
			desc: "negative: validation error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, `{"message":"category title is required"}`)
			},
			expectError: true,
		},
		{
			desc: "negative: html page with created status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeHTML(w, http.StatusCreated, `<html>proxy error page</html>`)
			},
			expectError: true,
		},
		{
			desc: "negative: created category without id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusCreated, `{"title":"Food","active":false}`)
			},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			api := categories.New(newTestServer(t, tc.handler), time.Second)

			actual, err := api.Create(ctx, "Food")
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, actual)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestCategoriesAPI_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo

	testCases := [...]struct {
		desc        string
		handler     http.HandlerFunc
		expectError bool
	}{
		{
			desc: "positive: deleted category",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/categories/3", r.URL.Path)

				w.WriteHeader(http.StatusNoContent)
			},
		},
		{
			desc: "negative: unexpected status code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadGateway, `{"message":"bad gateway"}`)
			},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			api := categories.New(newTestServer(t, tc.handler), time.Second)

			err := api.Delete(ctx, 3)
			if tc.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCategoriesAPI_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	api := categories.New(url, time.Second)

	_, err := api.List(context.Background()) //nolint: forbidigo
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send list categories request")
}
