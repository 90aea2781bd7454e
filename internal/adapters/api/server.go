// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlookup.app/internal/core/search"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port        int
	IconBaseURL string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	searchUseCase SearchUseCase
	history       ports.SearchHistoryRepository
	healthChecker ports.SystemHealthChecker
	presenter     *Presenter
}

// SearchUseCase is the part of the search use case the HTTP adapter depends on
type SearchUseCase interface {
	OpenSession(ctx context.Context) (*search.Result, error)
	Search(ctx context.Context, sessionID, query string) (*search.Result, error)
	State(ctx context.Context, sessionID string) (*search.Result, error)
}

// ServerOptions represents options for creating the HTTP server.
// History is optional; without it /api/history answers 404.
type ServerOptions struct {
	Config          ServerConfig
	SearchUseCase   SearchUseCase
	History         ports.SearchHistoryRepository
	HealthChecker   ports.SystemHealthChecker
	MetricsGatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.Default()

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		searchUseCase: opts.SearchUseCase,
		history:       opts.History,
		healthChecker: opts.HealthChecker,
		presenter:     NewPresenter(opts.Config.IconBaseURL),
	}

	server.setupRoutes(opts.MetricsGatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SearchUseCase == nil {
		return errors.NewValidationError("search use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Config.IconBaseURL == "" {
		return errors.NewValidationError("icon base URL is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.POST("/sessions", s.openSession)
		api.GET("/sessions/:id", s.getSessionState)
		api.POST("/sessions/:id/search", s.searchCity)
		api.GET("/history", s.getHistory)
		api.GET("/health", s.getHealth)
	}

	if gatherer == nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		return
	}
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the configured router
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
