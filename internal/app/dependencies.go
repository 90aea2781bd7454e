package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"weatherlookup.app/internal/adapters/database"
	"weatherlookup.app/internal/adapters/external"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	httpClient external.HTTPClient

	db         *gorm.DB
	stateStore ports.StateStore
	fileLogger *infrastructure.FileLoggerAdapter
	pruner     *infrastructure.HistoryPruner
	health     *infrastructure.SystemHealthChecker
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests.
// A nil Registry means the default Prometheus registry.
type DependencyOptions struct {
	Registry   *prometheus.Registry
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config:     cfg,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
		httpClient: opts.HTTPClient,
	}
	if opts.Registry != nil {
		container.registerer = opts.Registry
		container.gatherer = opts.Registry
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())
	metrics := infrastructure.NewPrometheusMetrics(c.registerer)

	weatherClient, err := c.initializeWeatherClient(logger, metrics)
	if err != nil {
		return err
	}

	factory := external.NewStateStoreFactory()
	stateStore, err := factory.CreateStateStore(&c.config.Session)
	if err != nil {
		return fmt.Errorf("create state store: %w", err)
	}
	c.stateStore = stateStore
	searchStates := external.NewSearchStateAdapter(stateStore, c.config.Session.TTL())

	slog.Info("Session store initialized",
		"type", c.config.Session.StoreType.String(),
		"ttl", c.config.Session.TTL().String())

	var history ports.SearchHistoryRepository
	if c.config.History.Enabled {
		if history, err = c.initializeHistory(logger); err != nil {
			return err
		}
	}

	checkers := []ports.HealthChecker{
		infrastructure.NewWeatherClientHealthChecker(weatherClient),
		infrastructure.NewStateStoreHealthChecker(stateStore, c.config.Session.StoreType),
	}
	if c.db != nil {
		checkers = append(checkers, infrastructure.NewDatabaseHealthChecker(c.db))
	}
	c.health = infrastructure.NewSystemHealthChecker(checkers...)

	c.ports = &ports.ApplicationPorts{
		WeatherClient: weatherClient,
		SearchStates:  searchStates,
		StateStore:    stateStore,
		SearchHistory: history,
		Logger:        logger,
		Metrics:       metrics,
		Health:        checkers,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeWeatherClient(logger ports.Logger, metrics ports.MetricsCollector) (ports.WeatherClient, error) {
	weatherCfg := c.config.Weather

	var client ports.WeatherClient = external.NewOpenWeatherMapClientAdapter(external.OpenWeatherMapClientParams{
		APIKey:     weatherCfg.APIKey,
		BaseURL:    weatherCfg.BaseURL,
		Timeout:    weatherCfg.RequestTimeout(),
		HTTPClient: c.httpClient,
		Logger:     logger,
	})

	if weatherCfg.EnableLogging {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			client = external.NewWeatherClientLoggingDecorator(client, logger)
		} else {
			c.fileLogger = fileLogger
			client = external.NewWeatherClientLoggingDecorator(client, infrastructure.NewTeeLogger(logger, fileLogger))
			slog.Info("Weather client file logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	return external.NewWeatherClientMetricsDecorator(client, metrics), nil
}

func (c *DependencyContainer) initializeHistory(logger ports.Logger) (ports.SearchHistoryRepository, error) {
	slog.Info("Initializing search history...", "driver", c.config.History.Driver)

	db, err := database.Open(c.config.History, c.config.Database)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	c.db = db

	history := database.NewSearchHistoryRepositoryAdapter(db)

	pruner, err := infrastructure.NewHistoryPruner(infrastructure.HistoryPrunerParams{
		History:   history,
		Logger:    logger,
		Retention: c.config.History.Retention(),
		Interval:  c.config.History.PruneInterval(),
	})
	if err != nil {
		return nil, fmt.Errorf("create history pruner: %w", err)
	}
	c.pruner = pruner

	slog.Info("Search history initialized successfully")
	return history, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	return c.health
}

func (c *DependencyContainer) MetricsGatherer() prometheus.Gatherer {
	return c.gatherer
}

// HistoryPruner is nil when search history is disabled
func (c *DependencyContainer) HistoryPruner() *infrastructure.HistoryPruner {
	return c.pruner
}

// Cleanup releases every resource the container opened. It is safe to call more than once.
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.pruner != nil {
		c.pruner.Stop()
	}
	if c.db != nil {
		keep(database.Close(c.db))
		c.db = nil
	}
	if closer, ok := c.stateStore.(io.Closer); ok {
		keep(closer.Close())
		c.stateStore = nil
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	return firstErr
}
