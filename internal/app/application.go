package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/adapters/api"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/search"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/validation"
)

const credentialPrefixLength = 6

type Application struct {
	config *config.Config

	// Use Cases
	searchUseCase *search.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	app.logCredentialDiagnostic()

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

// CredentialDiagnostic describes the configured API key without revealing it
func CredentialDiagnostic(apiKey string) string {
	return validation.MaskSecret(apiKey, credentialPrefixLength)
}

// logCredentialDiagnostic runs once per Application, during construction
func (a *Application) logCredentialDiagnostic() {
	slog.Info("Weather API credential", "OPENWEATHERMAP_API_KEY", CredentialDiagnostic(a.config.Weather.APIKey))
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	searchUseCase, err := search.NewUseCase(search.UseCaseDependencies{
		Client:  a.ports.WeatherClient,
		States:  a.ports.SearchStates,
		History: a.ports.SearchHistory,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create search use case: %w", err)
	}
	a.searchUseCase = searchUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:        a.config.Server.Port,
			IconBaseURL: a.config.Weather.IconBaseURL,
		},
		SearchUseCase:   a.searchUseCase,
		History:         a.ports.SearchHistory,
		HealthChecker:   a.deps.HealthChecker(),
		MetricsGatherer: a.deps.MetricsGatherer(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the history pruner and serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if pruner := a.deps.HistoryPruner(); pruner != nil {
		if err := pruner.Start(); err != nil {
			return fmt.Errorf("start history pruner: %w", err)
		}
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router serving the API
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
