// Package rest exposes the category store over HTTP.
package rest

import (
	"context"
	"net"
	"time"

	"github.com/VladPetriv/category_manager/internal/service"
	"github.com/VladPetriv/category_manager/pkg/database"
	"github.com/VladPetriv/category_manager/pkg/errs"
	"github.com/VladPetriv/category_manager/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	headerRequestID = "X-Request-ID"
	serverName      = "category_manager"
)

// Server represents category store http server.
type Server struct {
	address string
	logger  *logger.Logger
	server  *fasthttp.Server
}

// ServerOptions represents input options for new instance of server.
type ServerOptions struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Logger   *logger.Logger
	Services service.Services
	// Database is pinged by the health endpoint, optional.
	Database database.Database
}

// NewServer returns new instance of server.
func NewServer(opts ServerOptions) *Server {
	s := &Server{
		address: opts.Address,
		logger:  opts.Logger,
	}

	s.server = &fasthttp.Server{
		Name:         serverName,
		Handler:      s.withRequestLogging(s.newRouter(opts).Handler),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	return s
}

func (s *Server) newRouter(opts ServerOptions) *router.Router {
	categories := newCategoryHandler(opts.Logger, opts.Services.Category)

	r := router.New()
	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, fasthttp.StatusNotFound, errs.New("route not found"))
	}
	r.MethodNotAllowed = func(ctx *fasthttp.RequestCtx) {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, errs.New("method not allowed"))
	}

	r.GET("/health", healthHandler(opts.Database))

	r.GET("/categories", categories.list)
	r.POST("/categories", categories.create)
	r.GET("/categories/{id}", categories.get)
	r.PATCH("/categories/{id}", categories.update)
	r.PUT("/categories/{id}", categories.update)
	r.DELETE("/categories/{id}", categories.delete)

	return r
}

// ListenAndServe starts accepting connections on configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("address", s.address).Msg("starting http server")
	return s.server.ListenAndServe(s.address)
}

// Serve accepts connections from the given listener.
func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) withRequestLogging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		requestID := string(ctx.Request.Header.Peek(headerRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Response.Header.Set(headerRequestID, requestID)

		startedAt := time.Now()
		next(ctx)

		s.logger.Info().
			Str("requestID", requestID).
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(startedAt)).
			Msg("handled request")
	}
}

func healthHandler(db database.Database) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if db != nil {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()

			err := db.Ping(pingCtx)
			if err != nil {
				writeError(ctx, fasthttp.StatusServiceUnavailable, errs.New("database is unavailable"))
				return
			}
		}

		writeJSON(ctx, fasthttp.StatusOK, map[string]bool{"ok": true})
	}
}
