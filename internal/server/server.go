package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-chef/backend/config"
	"github.com/pageza/alchemorsel-chef/backend/internal/router"
	"github.com/pageza/alchemorsel-chef/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a server with all routes registered
func New(cfg *config.Config, recipes service.IRecipeService, logger *zap.Logger) *Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.SetupRouter(recipes, logger)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: engine,
		},
		logger: logger,
	}
}

// Start listens until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
