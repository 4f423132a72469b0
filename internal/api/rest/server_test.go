package rest_test

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/VladPetriv/category_manager/internal/api/rest"
	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/VladPetriv/category_manager/internal/service"
	"github.com/VladPetriv/category_manager/internal/service/mocks"
	"github.com/VladPetriv/category_manager/pkg/logger"
	"github.com/VladPetriv/category_manager/pkg/typecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type request struct {
	method string
	path   string
	body   string
}

type response struct {
	statusCode int
	body       string
}

func startTestServer(t *testing.T, categoryService service.CategoryService) *fasthttp.Client {
	t.Helper()

	server := rest.NewServer(rest.ServerOptions{
		Logger:   logger.New(logger.Options{LogLevel: "debug"}),
		Services: service.Services{Category: categoryService},
	})

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = server.Serve(ln)
	}()

	t.Cleanup(func() {
		_ = server.Shutdown()
	})

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}

func do(t *testing.T, client *fasthttp.Client, r request) response {
	t.Helper()

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://categories.test" + r.path)
	req.Header.SetMethod(r.method)
	req.SetConnectionClose()
	if r.body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(r.body)
	}

	err := client.Do(req, resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Peek("X-Request-ID"))

	return response{
		statusCode: resp.StatusCode(),
		body:       string(resp.Body()),
	}
}

func TestServer_Categories(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		mock     func(categoryService *mocks.CategoryService)
		request  request
		expected response
	}{
		{
			desc: "positive: listed categories",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("ListCategories", mock.Anything).Return([]models.Category{
					{ID: 1, Title: "Food"},
					{ID: 2, Title: "Clothing", Active: true},
				}, nil)
			},
			request: request{method: fasthttp.MethodGet, path: "/categories"},
			expected: response{
				statusCode: fasthttp.StatusOK,
				body:       `[{"id":1,"title":"Food","active":false},{"id":2,"title":"Clothing","active":true}]`,
			},
		},
		{
			desc: "positive: listed empty categories as empty array",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("ListCategories", mock.Anything).Return([]models.Category{}, nil)
			},
			request:  request{method: fasthttp.MethodGet, path: "/categories"},
			expected: response{statusCode: fasthttp.StatusOK, body: `[]`},
		},
		{
			desc: "negative: store error is hidden behind internal server error",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("ListCategories", mock.Anything).Return(nil, fmt.Errorf("connection refused"))
			},
			request: request{method: fasthttp.MethodGet, path: "/categories"},
			expected: response{
				statusCode: fasthttp.StatusInternalServerError,
				body:       `{"message":"internal server error"}`,
			},
		},
		{
			desc: "positive: created category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("CreateCategory", mock.Anything, service.CreateCategoryOptions{Title: "Food"}).
					Return(&models.Category{ID: 1, Title: "Food"}, nil)
			},
			request: request{method: fasthttp.MethodPost, path: "/categories", body: `{"title":"Food"}`},
			expected: response{
				statusCode: fasthttp.StatusCreated,
				body:       `{"id":1,"title":"Food","active":false}`,
			},
		},
		{
			desc: "negative: blank title rejected",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("CreateCategory", mock.Anything, service.CreateCategoryOptions{Title: " "}).
					Return(nil, service.ErrCategoryTitleRequired)
			},
			request: request{method: fasthttp.MethodPost, path: "/categories", body: `{"title":" "}`},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"category title is required"}`,
			},
		},
		{
			desc:    "negative: malformed body",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodPost, path: "/categories", body: `{"title":`},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"invalid request body"}`,
			},
		},
		{
			desc: "positive: got category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("GetCategory", mock.Anything, 1).
					Return(&models.Category{ID: 1, Title: "Food"}, nil)
			},
			request: request{method: fasthttp.MethodGet, path: "/categories/1"},
			expected: response{
				statusCode: fasthttp.StatusOK,
				body:       `{"id":1,"title":"Food","active":false}`,
			},
		},
		{
			desc: "negative: category not found",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("GetCategory", mock.Anything, 7).Return(nil, service.ErrCategoryNotFound)
			},
			request: request{method: fasthttp.MethodGet, path: "/categories/7"},
			expected: response{
				statusCode: fasthttp.StatusNotFound,
				body:       `{"message":"category not found"}`,
			},
		},
		{
			desc:    "negative: invalid category id",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodGet, path: "/categories/abc"},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"invalid category id"}`,
			},
		},
		{
			desc:    "negative: category id out of range",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodGet, path: "/categories/3000000000"},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"invalid category id"}`,
			},
		},
		{
			desc:    "negative: update with category id out of range",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodPatch, path: "/categories/3000000000", body: `{"active":true}`},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"invalid category id"}`,
			},
		},
		{
			desc:    "negative: delete with category id out of range",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodDelete, path: "/categories/3000000000"},
			expected: response{
				statusCode: fasthttp.StatusBadRequest,
				body:       `{"message":"invalid category id"}`,
			},
		},
		{
			desc: "positive: updated category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("UpdateCategory", mock.Anything, 1, service.UpdateCategoryOptions{
					Active: typecast.ToPtr(true),
				}).Return(&models.Category{ID: 1, Title: "Food", Active: true}, nil)
			},
			request: request{method: fasthttp.MethodPatch, path: "/categories/1", body: `{"active":true}`},
			expected: response{
				statusCode: fasthttp.StatusOK,
				body:       `{"id":1,"title":"Food","active":true}`,
			},
		},
		{
			desc: "negative: updated not existed category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("UpdateCategory", mock.Anything, 9, service.UpdateCategoryOptions{
					Title: typecast.ToPtr("Travel"),
				}).Return(nil, service.ErrCategoryNotFound)
			},
			request: request{method: fasthttp.MethodPatch, path: "/categories/9", body: `{"title":"Travel"}`},
			expected: response{
				statusCode: fasthttp.StatusNotFound,
				body:       `{"message":"category not found"}`,
			},
		},
		{
			desc: "positive: deleted category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("DeleteCategory", mock.Anything, 1).Return(nil)
			},
			request:  request{method: fasthttp.MethodDelete, path: "/categories/1"},
			expected: response{statusCode: fasthttp.StatusNoContent},
		},
		{
			desc: "positive: deleted not existed category",
			mock: func(categoryService *mocks.CategoryService) {
				categoryService.On("DeleteCategory", mock.Anything, 404).Return(nil)
			},
			request:  request{method: fasthttp.MethodDelete, path: "/categories/404"},
			expected: response{statusCode: fasthttp.StatusNoContent},
		},
		{
			desc:    "negative: unknown route",
			mock:    func(categoryService *mocks.CategoryService) {},
			request: request{method: fasthttp.MethodGet, path: "/tags"},
			expected: response{
				statusCode: fasthttp.StatusNotFound,
				body:       `{"message":"route not found"}`,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			categoryServiceMock := mocks.NewCategoryService(t)
			tc.mock(categoryServiceMock)

			client := startTestServer(t, categoryServiceMock)

			actual := do(t, client, tc.request)
			assert.Equal(t, tc.expected.statusCode, actual.statusCode)
			if tc.expected.body == "" {
				assert.Empty(t, actual.body)
				return
			}
			assert.JSONEq(t, tc.expected.body, actual.body)
		})
	}
}

type failingDatabase struct{}

func (failingDatabase) Ping(context.Context) error { return fmt.Errorf("connection refused") }
func (failingDatabase) Close() error               { return nil }

func TestServer_Health(t *testing.T) {
	t.Parallel()

	server := rest.NewServer(rest.ServerOptions{
		Logger:   logger.New(logger.Options{LogLevel: "debug"}),
		Services: service.Services{Category: mocks.NewCategoryService(t)},
		Database: failingDatabase{},
	})

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = server.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = server.Shutdown()
	})

	client := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	actual := do(t, client, request{method: fasthttp.MethodGet, path: "/health"})
	assert.Equal(t, fasthttp.StatusServiceUnavailable, actual.statusCode)
	assert.JSONEq(t, `{"message":"database is unavailable"}`, actual.body)
}
