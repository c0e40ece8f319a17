package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobspy-proxy/internal/config"
	"github.com/honeycarbs/jobspy-proxy/internal/domain"
	"github.com/honeycarbs/jobspy-proxy/pkg/logging"
)

// MCPPath is where the MCP streamable HTTP handler is mounted
const MCPPath = "/mcp"

// MCPHandler is the MCP transport mounted next to the REST routes; nil disables it
type MCPHandler http.Handler

// Server wraps the gin engine with an HTTP listener
type Server struct {
	logger *logging.Logger
	config config.ServerConfig

	engine  *gin.Engine
	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs the HTTP server with every route registered
func NewServer(log *logging.Logger, cfg config.Config, scrape *ScrapeHandler, mcp MCPHandler) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		AccessLogMiddleware(log),
		CORSMiddleware(),
	)

	for _, source := range domain.Sources() {
		engine.GET(Route(source), scrape.Scrape(source))
	}
	engine.GET("/healthz", Healthz)

	if mcp != nil {
		h := gin.WrapH(mcp)
		engine.Any(MCPPath, h)
		log.Info("MCP transport mounted", "path", MCPPath)
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		config: cfg.Server,
		engine: engine,
		srv:    httpSrv,
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr reports the configured listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
