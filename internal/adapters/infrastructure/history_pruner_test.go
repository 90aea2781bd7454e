package infrastructure

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
)

func newTestPruner(t *testing.T, history *mocks.SearchHistoryRepository) *HistoryPruner {
	pruner, err := NewHistoryPruner(HistoryPrunerParams{
		History:   history,
		Logger:    mocks.AllowLogging(mocks.NewLogger(t)),
		Retention: 30 * 24 * time.Hour,
		Interval:  time.Hour,
	})
	require.NoError(t, err)
	return pruner
}

func TestNewHistoryPruner_Validation(t *testing.T) {
	history := mocks.NewSearchHistoryRepository(t)
	logger := mocks.NewLogger(t)

	tests := []struct {
		name    string
		params  HistoryPrunerParams
		wantErr string
	}{
		{"NoHistory", HistoryPrunerParams{Logger: logger, Retention: time.Hour, Interval: time.Hour}, "history repository is required"},
		{"NoLogger", HistoryPrunerParams{History: history, Retention: time.Hour, Interval: time.Hour}, "logger is required"},
		{"ZeroRetention", HistoryPrunerParams{History: history, Logger: logger, Interval: time.Hour}, "retention must be positive"},
		{"ShortInterval", HistoryPrunerParams{History: history, Logger: logger, Retention: time.Hour, Interval: time.Second}, "at least one minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pruner, err := NewHistoryPruner(tt.params)
			assert.Nil(t, pruner)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestHistoryPruner_Prune(t *testing.T) {
	history := mocks.NewSearchHistoryRepository(t)
	pruner := newTestPruner(t, history)
	pruner.now = func() time.Time { return time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC) }

	expectedCutoff := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history.EXPECT().DeleteOlderThan(mock.Anything, expectedCutoff).Return(int64(4), nil).Once()

	deleted, err := pruner.Prune(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestHistoryPruner_PruneError(t *testing.T) {
	history := mocks.NewSearchHistoryRepository(t)
	pruner := newTestPruner(t, history)

	history.EXPECT().DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), stderrors.New("database is locked")).Once()

	deleted, err := pruner.Prune(context.Background())

	assert.Zero(t, deleted)
	assert.ErrorContains(t, err, "prune search history: database is locked")
}

func TestHistoryPruner_StartRunsImmediately(t *testing.T) {
	history := mocks.NewSearchHistoryRepository(t)
	pruner := newTestPruner(t, history)

	ran := make(chan struct{}, 1)
	history.EXPECT().DeleteOlderThan(mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, cutoff time.Time) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(int64(1), nil)

	require.NoError(t, pruner.Start())
	defer pruner.Stop()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("prune job did not run after Start")
	}
}
