package ports

import (
	"context"
	"time"
)

// SearchRecord represents one finished search for persistence
type SearchRecord struct {
	ID             uint
	SessionID      string
	Query          string
	Status         string
	ErrorKind      string
	ForecastStatus string
	ForecastDays   int
	DurationMs     int64
	CreatedAt      time.Time
}

// SearchHistoryRepository defines the contract for search history persistence
type SearchHistoryRepository interface {
	Record(ctx context.Context, record *SearchRecord) error
	Recent(ctx context.Context, limit int) ([]*SearchRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
