package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	return db
}

func TestSearchHistoryRepository_Record(t *testing.T) {
	repo := NewSearchHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	record := &ports.SearchRecord{
		SessionID:      "s1",
		Query:          "Ankara",
		Status:         "success",
		ForecastStatus: "available",
		ForecastDays:   5,
		DurationMs:     120,
	}

	require.NoError(t, repo.Record(ctx, record))
	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Ankara", recent[0].Query)
	assert.Equal(t, 5, recent[0].ForecastDays)
	assert.Equal(t, int64(120), recent[0].DurationMs)
}

func TestSearchHistoryRepository_Record_Validation(t *testing.T) {
	repo := NewSearchHistoryRepositoryAdapter(setupTestDB(t))

	assert.True(t, errors.IsValidationError(repo.Record(context.Background(), nil)))
	assert.True(t, errors.IsValidationError(repo.Record(context.Background(), &ports.SearchRecord{Query: "Ankara"})))
}

func TestSearchHistoryRepository_RecentNewestFirst(t *testing.T) {
	repo := NewSearchHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, &ports.SearchRecord{
			SessionID: "s1",
			Query:     fmt.Sprintf("City%d", i),
			Status:    "success",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.Recent(ctx, 3)

	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "City4", recent[0].Query)
	assert.Equal(t, "City3", recent[1].Query)
	assert.Equal(t, "City2", recent[2].Query)
}

func TestSearchHistoryRepository_RecentLimitBounds(t *testing.T) {
	repo := NewSearchHistoryRepositoryAdapter(setupTestDB(t))

	for _, limit := range []int{0, -1, 101} {
		_, err := repo.Recent(context.Background(), limit)
		assert.True(t, errors.IsValidationError(err), "limit %d", limit)
	}
}

func TestSearchHistoryRepository_DeleteOlderThan(t *testing.T) {
	repo := NewSearchHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	cutoff := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, &ports.SearchRecord{SessionID: "s1", Query: "Old", Status: "failed", CreatedAt: cutoff.Add(-48 * time.Hour)}))
	require.NoError(t, repo.Record(ctx, &ports.SearchRecord{SessionID: "s1", Query: "Older", Status: "failed", CreatedAt: cutoff.Add(-72 * time.Hour)}))
	require.NoError(t, repo.Record(ctx, &ports.SearchRecord{SessionID: "s2", Query: "New", Status: "success", CreatedAt: cutoff.Add(time.Hour)}))

	deleted, err := repo.DeleteOlderThan(ctx, cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "New", recent[0].Query)
}

func TestOpen(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		db, err := Open(config.HistoryConfig{Driver: DriverSQLite, SQLitePath: t.TempDir() + "/history.db"}, config.DatabaseConfig{})
		require.NoError(t, err)
		assert.True(t, db.Migrator().HasTable(&SearchHistoryModel{}))
		assert.NoError(t, Close(db))
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		db, err := Open(config.HistoryConfig{Driver: "oracle"}, config.DatabaseConfig{})
		assert.Nil(t, db)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("CloseNil", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})
}
