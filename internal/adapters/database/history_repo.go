package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const maxRecentLimit = 100

// SearchHistoryModel represents the database model for finished searches
type SearchHistoryModel struct {
	ID             uint   `gorm:"primaryKey"`
	SessionID      string `gorm:"index;not null"`
	Query          string `gorm:"not null"`
	Status         string `gorm:"not null"`
	ErrorKind      string
	ForecastStatus string
	ForecastDays   int
	DurationMs     int64
	CreatedAt      time.Time `gorm:"index"`
}

func (SearchHistoryModel) TableName() string {
	return "search_history"
}

// SearchHistoryRepositoryAdapter implements the SearchHistoryRepository port using GORM
type SearchHistoryRepositoryAdapter struct {
	db *gorm.DB
}

// NewSearchHistoryRepositoryAdapter creates a new search history repository adapter
func NewSearchHistoryRepositoryAdapter(db *gorm.DB) *SearchHistoryRepositoryAdapter {
	return &SearchHistoryRepositoryAdapter{db: db}
}

// Record persists one finished search
func (r *SearchHistoryRepositoryAdapter) Record(ctx context.Context, record *ports.SearchRecord) error {
	if record == nil {
		return errors.NewValidationError("search record cannot be nil")
	}
	if record.SessionID == "" {
		return errors.NewValidationError("search record session id cannot be empty")
	}

	model := r.dataToModel(record)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to record search", err)
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	return nil
}

// Recent lists the newest searches first
func (r *SearchHistoryRepositoryAdapter) Recent(ctx context.Context, limit int) ([]*ports.SearchRecord, error) {
	if limit < 1 || limit > maxRecentLimit {
		return nil, errors.NewValidationError("limit must be between 1 and 100")
	}

	var models []SearchHistoryModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list recent searches", result.Error)
	}

	records := make([]*ports.SearchRecord, 0, len(models))
	for i := range models {
		records = append(records, r.modelToData(&models[i]))
	}
	return records, nil
}

// DeleteOlderThan removes searches recorded before cutoff
func (r *SearchHistoryRepositoryAdapter) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&SearchHistoryModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to prune search history", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SearchHistoryRepositoryAdapter) dataToModel(record *ports.SearchRecord) *SearchHistoryModel {
	return &SearchHistoryModel{
		ID:             record.ID,
		SessionID:      record.SessionID,
		Query:          record.Query,
		Status:         record.Status,
		ErrorKind:      record.ErrorKind,
		ForecastStatus: record.ForecastStatus,
		ForecastDays:   record.ForecastDays,
		DurationMs:     record.DurationMs,
		CreatedAt:      record.CreatedAt,
	}
}

func (r *SearchHistoryRepositoryAdapter) modelToData(model *SearchHistoryModel) *ports.SearchRecord {
	return &ports.SearchRecord{
		ID:             model.ID,
		SessionID:      model.SessionID,
		Query:          model.Query,
		Status:         model.Status,
		ErrorKind:      model.ErrorKind,
		ForecastStatus: model.ForecastStatus,
		ForecastDays:   model.ForecastDays,
		DurationMs:     model.DurationMs,
		CreatedAt:      model.CreatedAt,
	}
}
