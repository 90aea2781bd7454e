package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"weatherlookup.app/internal/ports"
)

const pruneTimeout = 30 * time.Second

// HistoryPruner periodically removes search history older than the retention window
type HistoryPruner struct {
	scheduler *gocron.Scheduler
	history   ports.SearchHistoryRepository
	logger    ports.Logger
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

// HistoryPrunerParams holds the parameters for creating a history pruner
type HistoryPrunerParams struct {
	History   ports.SearchHistoryRepository
	Logger    ports.Logger
	Retention time.Duration
	Interval  time.Duration
}

// NewHistoryPruner creates a pruner; it does nothing until Start is called
func NewHistoryPruner(params HistoryPrunerParams) (*HistoryPruner, error) {
	if params.History == nil {
		return nil, fmt.Errorf("history repository is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.Retention <= 0 {
		return nil, fmt.Errorf("retention must be positive")
	}
	if params.Interval < time.Minute {
		return nil, fmt.Errorf("prune interval must be at least one minute")
	}

	return &HistoryPruner{
		scheduler: gocron.NewScheduler(time.UTC),
		history:   params.History,
		logger:    params.Logger,
		retention: params.Retention,
		interval:  params.Interval,
		now:       time.Now,
	}, nil
}

// Start schedules the prune job and starts the underlying scheduler.
// The first run happens immediately.
func (p *HistoryPruner) Start() error {
	minutes := int(p.interval.Minutes())

	if _, err := p.scheduler.Every(minutes).Minutes().Do(p.runOnce); err != nil {
		return fmt.Errorf("schedule history pruning: %w", err)
	}

	p.scheduler.StartAsync()
	p.logger.Info("history pruner started",
		ports.F("interval_minutes", minutes),
		ports.F("retention_hours", p.retention.Hours()))
	return nil
}

// Stop stops the scheduler and cancels any future runs
func (p *HistoryPruner) Stop() {
	p.scheduler.Stop()
}

// Prune deletes every record older than the retention window and returns how many were removed
func (p *HistoryPruner) Prune(ctx context.Context) (int64, error) {
	cutoff := p.now().UTC().Add(-p.retention)
	deleted, err := p.history.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune search history: %w", err)
	}
	return deleted, nil
}

func (p *HistoryPruner) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	deleted, err := p.Prune(ctx)
	if err != nil {
		p.logger.Error("history pruning failed", ports.F("error", err))
		return
	}
	if deleted > 0 {
		p.logger.Info("pruned search history", ports.F("deleted", deleted))
	}
}
