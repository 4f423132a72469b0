package rest

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/VladPetriv/category_manager/internal/service"
	"github.com/VladPetriv/category_manager/pkg/errs"
	"github.com/VladPetriv/category_manager/pkg/logger"
	"github.com/VladPetriv/category_manager/pkg/typecast"
	"github.com/valyala/fasthttp"
)

var (
	errInvalidCategoryID = errs.New("invalid category id")
	errInvalidBody       = errs.New("invalid request body")
)

type categoryHandler struct {
	logger          *logger.Logger
	categoryService service.CategoryService
}

func newCategoryHandler(logger *logger.Logger, categoryService service.CategoryService) *categoryHandler {
	return &categoryHandler{
		logger:          logger,
		categoryService: categoryService,
	}
}

func (h *categoryHandler) list(ctx *fasthttp.RequestCtx) {
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		h.handleServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, categories)
}

func (h *categoryHandler) create(ctx *fasthttp.RequestCtx) {
	var opts service.CreateCategoryOptions
	err := json.Unmarshal(ctx.PostBody(), &opts)
	if err != nil {
		h.logger.Debug().Err(err).Msg("unmarshal create category body")
		writeError(ctx, fasthttp.StatusBadRequest, errInvalidBody)
		return
	}

	category, err := h.categoryService.CreateCategory(ctx, opts)
	if err != nil {
		h.handleServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusCreated, category)
}

func (h *categoryHandler) get(ctx *fasthttp.RequestCtx) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(ctx, categoryID)
	if err != nil {
		h.handleServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, category)
}

func (h *categoryHandler) update(ctx *fasthttp.RequestCtx) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	var opts service.UpdateCategoryOptions
	err := json.Unmarshal(ctx.PostBody(), &opts)
	if err != nil {
		h.logger.Debug().Err(err).Msg("unmarshal update category body")
		writeError(ctx, fasthttp.StatusBadRequest, errInvalidBody)
		return
	}
	h.logger.Debug().
		Int("categoryID", categoryID).
		Str("title", typecast.FromPtr(opts.Title)).
		Bool("active", typecast.FromPtr(opts.Active)).
		Msg("got update category request")

	category, err := h.categoryService.UpdateCategory(ctx, categoryID, opts)
	if err != nil {
		h.handleServiceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, category)
}

func (h *categoryHandler) delete(ctx *fasthttp.RequestCtx) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	err := h.categoryService.DeleteCategory(ctx, categoryID)
	if err != nil {
		h.handleServiceError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *categoryHandler) handleServiceError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		writeError(ctx, fasthttp.StatusNotFound, err)
	case errs.IsExpected(err):
		writeError(ctx, fasthttp.StatusBadRequest, err)
	default:
		h.logger.Error().Err(err).Str("path", string(ctx.Path())).Msg("handle request")
		writeError(ctx, fasthttp.StatusInternalServerError, errs.New("internal server error"))
	}
}

func parseCategoryID(ctx *fasthttp.RequestCtx) (int, bool) {
	rawID, _ := ctx.UserValue("id").(string)

	// ids are SERIAL, anything outside int4 can't exist in store
	categoryID, err := strconv.ParseInt(rawID, 10, 32)
	if err != nil || categoryID <= 0 {
		writeError(ctx, fasthttp.StatusBadRequest, errInvalidCategoryID)
		return 0, false
	}

	return int(categoryID), true
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.Error("marshal response", fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, statusCode int, err error) {
	e, ok := errs.As(err)
	if !ok {
		e = errs.New(err.Error())
	}

	writeJSON(ctx, statusCode, e)
}
