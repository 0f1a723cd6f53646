package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drstein77/marketcatalog/internal/catalog"
	"github.com/drstein77/marketcatalog/internal/config"
	"github.com/drstein77/marketcatalog/internal/controllers"
	"github.com/drstein77/marketcatalog/internal/logger"
	"github.com/drstein77/marketcatalog/internal/storage"
	"github.com/drstein77/marketcatalog/internal/validate"
)

type Server struct {
	mx  sync.Mutex
	srv *http.Server
	ctx context.Context
	log *logger.Logger
}

// NewServer creates a new Server instance with the provided context
func NewServer(ctx context.Context) *Server {
	return &Server{
		ctx: ctx,
		log: logger.NewNop(),
	}
}

// Logger returns the server logger. It discards output until Serve has
// built the configured one.
func (server *Server) Logger() *logger.Logger {
	server.mx.Lock()
	defer server.mx.Unlock()
	return server.log
}

// Serve parses options, builds the catalog API and blocks serving it until
// Shutdown is called.
func (server *Server) Serve() error {
	option := config.NewOptions()
	option.ParseFlags()

	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	server.mx.Lock()
	server.log = nLogger
	server.mx.Unlock()

	handler, err := NewHandler(option, nLogger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              option.RunAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return server.ctx
		},
	}
	server.mx.Lock()
	server.srv = srv
	server.mx.Unlock()

	nLogger.Info("starting server", zap.String("addr", option.RunAddr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// NewHandler validates the built-in catalog and returns the HTTP API for it.
// With strict validation enabled, any validation error aborts startup.
func NewHandler(option *config.Options, log *logger.Logger) (http.Handler, error) {
	c, t := catalog.Default(), catalog.DefaultTaxonomy()

	report := validate.Run(c, t)
	for _, issue := range report.Warnings() {
		log.Warn("catalog validation", zap.String("issue", issue.Error()))
	}
	for _, issue := range report.Errors() {
		log.Error("catalog validation", zap.String("issue", issue.Error()))
	}
	if option.ValidateStrict() {
		if err := report.Err(); err != nil {
			return nil, fmt.Errorf("catalog validation failed: %w", err)
		}
	}

	store := storage.NewMemoryStorage(c, t, log)
	basecontr := controllers.NewBaseController(store, log, option.ServiceName(), option.ExportFile())
	return basecontr.Route(), nil
}

// Shutdown gracefully stops the server, waiting at most timeout for active
// requests.
func (server *Server) Shutdown(timeout time.Duration) {
	server.mx.Lock()
	srv, log := server.srv, server.log
	server.mx.Unlock()

	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	} else {
		log.Info("Server stopped")
	}
	_ = log.Sync()
}
