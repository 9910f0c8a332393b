// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/dashboard"
	"github.com/AymenS02/united-real-estate/internal/middleware"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	propertyHandler  *property.Handler
	dashboardHandler *dashboard.Handler

	repo property.Repository
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	propertyHandler *property.Handler,
	dashboardHandler *dashboard.Handler,
	repo property.Repository,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsConfig(cfg)))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "United Real Estate API is healthy!"})
	})

	api := router.Group("/api")
	propertyHandler.RegisterRoutes(api)

	if cfg.DashboardEnabled && dashboardHandler != nil {
		dashboardHandler.RegisterRoutes(router)
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
	} else {
		logger.Info("Dashboard disabled, its routes will not be registered.")
	}

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ServerTimeout,
		WriteTimeout: cfg.ServerTimeout,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		propertyHandler:  propertyHandler,
		dashboardHandler: dashboardHandler,
		repo:             repo,
	}, nil
}

// corsConfig allows every origin for "*", otherwise only the listed ones.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}

	allowAll := len(cfg.CORSAllowedOrigins) == 0
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowCredentials = true
	return corsCfg
}

// Migrate prepares the configured store (table or indexes).
func (s *Server) Migrate(ctx context.Context) error {
	s.logger.Info("Running store migration", zap.String("store_driver", s.cfg.StoreDriver))
	if err := s.repo.Migrate(ctx); err != nil {
		s.logger.Error("Store migration failed", zap.Error(err))
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

// Logger returns the application logger.
func (s *Server) Logger() *zap.Logger {
	return s.logger
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
		zap.String("store_driver", s.cfg.StoreDriver),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	return s.httpServer.Shutdown(ctx)
}
