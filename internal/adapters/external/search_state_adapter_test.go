package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

func TestSearchStateAdapter_PublishAndLoad(t *testing.T) {
	ctx := context.Background()
	adapter := NewSearchStateAdapter(NewMemoryStateStore(), time.Hour)

	gen, err := adapter.NextGeneration(ctx, "s1")
	require.NoError(t, err)

	state := &ports.SearchStateData{
		SessionID:  "s1",
		Query:      "Ankara",
		Generation: gen,
		Status:     "success",
		Current:    &ports.CurrentConditions{LocationName: "Ankara", CountryCode: "TR", TemperatureCelsius: 21.6, IconID: "01d"},
		DailyForecast: []ports.DailyForecastData{
			{Date: "2024-05-01", TemperatureCelsius: 20, IconID: "01d", Description: "açık", MinCelsius: 12, MaxCelsius: 21},
		},
		ForecastStatus: "available",
		UpdatedAt:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	ok, err := adapter.Publish(ctx, state)
	require.NoError(t, err)
	require.True(t, ok)

	loaded, err := adapter.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSearchStateAdapter_StalePublishIsRejected(t *testing.T) {
	ctx := context.Background()
	adapter := NewSearchStateAdapter(NewMemoryStateStore(), time.Hour)

	old, err := adapter.NextGeneration(ctx, "s1")
	require.NoError(t, err)
	_, err = adapter.NextGeneration(ctx, "s1")
	require.NoError(t, err)

	ok, err := adapter.Publish(ctx, &ports.SearchStateData{SessionID: "s1", Generation: old, Status: "success"})

	require.NoError(t, err)
	assert.False(t, ok)
	_, err = adapter.Load(ctx, "s1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSearchStateAdapter_Validation(t *testing.T) {
	ctx := context.Background()
	adapter := NewSearchStateAdapter(mocks.NewStateStore(t), time.Hour)

	_, err := adapter.Load(ctx, "")
	assert.True(t, errors.IsValidationError(err))

	_, err = adapter.NextGeneration(ctx, "")
	assert.True(t, errors.IsValidationError(err))

	_, err = adapter.Publish(ctx, nil)
	assert.True(t, errors.IsValidationError(err))

	_, err = adapter.Publish(ctx, &ports.SearchStateData{})
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchStateAdapter_StoreErrors(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStateStore(t)
	adapter := NewSearchStateAdapter(store, time.Hour)

	store.EXPECT().Get(mock.Anything, "search:session:s1").Return([]byte("{not json"), nil).Once()
	_, err := adapter.Load(ctx, "s1")
	assert.True(t, errors.IsExternalAPIError(err))

	store.EXPECT().Get(mock.Anything, "search:session:s2").
		Return(nil, errors.NewExternalAPIError("redis get operation failed", nil)).Once()
	_, err = adapter.Load(ctx, "s2")
	assert.True(t, errors.IsExternalAPIError(err))

	store.EXPECT().NextGeneration(mock.Anything, "search:session:s3", time.Hour).Return(uint64(7), nil).Once()
	gen, err := adapter.NextGeneration(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), gen)
}
