package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/search"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func stateStores(t *testing.T) map[string]ports.StateStore {
	_, cfg := setupMockRedis(t)
	redisStore, err := NewRedisStateStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisStore.Close() })

	return map[string]ports.StateStore{
		"Memory": NewMemoryStateStore(),
		"Redis":  redisStore,
	}
}

func TestStateStores_GenerationSemantics(t *testing.T) {
	for name, store := range stateStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ttl := time.Minute

			_, err := store.Get(ctx, "s1")
			assert.True(t, errors.IsNotFoundError(err))

			first, err := store.NextGeneration(ctx, "s1", ttl)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), first)

			ok, err := store.SetIfCurrent(ctx, "s1", first, []byte("first"), ttl)
			require.NoError(t, err)
			assert.True(t, ok)

			second, err := store.NextGeneration(ctx, "s1", ttl)
			require.NoError(t, err)
			assert.Equal(t, uint64(2), second)

			ok, err = store.SetIfCurrent(ctx, "s1", first, []byte("stale"), ttl)
			require.NoError(t, err)
			assert.False(t, ok)

			value, err := store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "first", string(value))

			ok, err = store.SetIfCurrent(ctx, "s1", second, []byte("second"), ttl)
			require.NoError(t, err)
			assert.True(t, ok)

			value, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "second", string(value))

			ok, err = store.SetIfCurrent(ctx, "unknown", 1, []byte("x"), ttl)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Delete(ctx, "s1"))
			_, err = store.Get(ctx, "s1")
			assert.True(t, errors.IsNotFoundError(err))
		})
	}
}

func TestStateStores_Validation(t *testing.T) {
	for name, store := range stateStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "")
			assert.True(t, errors.IsValidationError(err))

			_, err = store.NextGeneration(ctx, "s1", 0)
			assert.True(t, errors.IsValidationError(err))

			_, err = store.SetIfCurrent(ctx, "s1", 1, nil, time.Minute)
			assert.True(t, errors.IsValidationError(err))

			assert.True(t, errors.IsValidationError(store.Delete(ctx, "")))
		})
	}
}

func TestStateStores_ConcurrentWritersKeepLatestGeneration(t *testing.T) {
	for name, store := range stateStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ttl := time.Minute

			var generations []uint64
			for i := 0; i < 20; i++ {
				gen, err := store.NextGeneration(ctx, "s1", ttl)
				require.NoError(t, err)
				generations = append(generations, gen)
			}
			latest := generations[len(generations)-1]

			var wg sync.WaitGroup
			for _, gen := range generations {
				wg.Add(1)
				go func(gen uint64) {
					defer wg.Done()
					ok, err := store.SetIfCurrent(ctx, "s1", gen, []byte{byte(gen)}, ttl)
					assert.NoError(t, err)
					assert.Equal(t, gen == latest, ok)
				}(gen)
			}
			wg.Wait()

			value, err := store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, []byte{byte(latest)}, value)
		})
	}
}

func TestMemoryStateStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStateStore()
	store.now = func() time.Time { return now }

	gen, err := store.NextGeneration(ctx, "s1", time.Minute)
	require.NoError(t, err)
	ok, err := store.SetIfCurrent(ctx, "s1", gen, []byte("v"), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.True(t, errors.IsNotFoundError(err))

	gen, err = store.NextGeneration(ctx, "s2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStateStore_GenerationSurvivesExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStateStore()
	store.now = func() time.Time { return now }

	first, err := store.NextGeneration(ctx, "s1", time.Minute)
	require.NoError(t, err)
	ok, err := store.SetIfCurrent(ctx, "s1", first, []byte("old"), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	second, err := store.NextGeneration(ctx, "s1", time.Minute)
	require.NoError(t, err)

	assert.Greater(t, second, first)
	_, err = store.Get(ctx, "s1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRedisStateStore_Expiry(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	store, err := NewRedisStateStore(cfg)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	gen, err := store.NextGeneration(ctx, "s1", time.Minute)
	require.NoError(t, err)
	ok, err := store.SetIfCurrent(ctx, "s1", gen, []byte("v"), time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, mockRedis.Exists("s1"))
	assert.True(t, mockRedis.Exists("s1:gen"))

	mockRedis.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, "s1")
	assert.True(t, errors.IsNotFoundError(err))
	assert.NoError(t, store.Ping(ctx))
}

func TestNewRedisStateStore(t *testing.T) {
	store, err := NewRedisStateStore(nil)
	assert.Nil(t, store)
	assert.True(t, errors.IsConfigurationError(err))

	store, err = NewRedisStateStore(&config.RedisConfig{
		Addr:         "127.0.0.1:1",
		DialTimeout:  1,
		ReadTimeout:  1,
		WriteTimeout: 1,
	})
	assert.Nil(t, store)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestStateStoreFactory_CreateStateStore(t *testing.T) {
	factory := NewStateStoreFactory()

	_, err := factory.CreateStateStore(nil)
	assert.True(t, errors.IsConfigurationError(err))

	store, err := factory.CreateStateStore(&config.SessionConfig{StoreType: config.StoreTypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStateStore{}, store)

	_, cfg := setupMockRedis(t)
	store, err = factory.CreateStateStore(&config.SessionConfig{StoreType: config.StoreTypeRedis, Redis: *cfg})
	require.NoError(t, err)
	assert.IsType(t, &RedisStateStore{}, store)

	_, err = factory.CreateStateStore(&config.SessionConfig{StoreType: config.StoreTypeUnknown})
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "unknown")
}

func TestRedisStateStore_SearchEndsFailedWhenCallerCancels(t *testing.T) {
	_, cfg := setupMockRedis(t)
	store, err := NewRedisStateStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	client := mocks.NewWeatherClient(t)
	metrics := mocks.NewMetricsCollector(t)
	uc, err := search.NewUseCase(search.UseCaseDependencies{
		Client:  client,
		States:  NewSearchStateAdapter(store, time.Hour),
		Logger:  mocks.AllowLogging(mocks.NewLogger(t)),
		Metrics: metrics,
	})
	require.NoError(t, err)

	opened, err := uc.OpenSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.EXPECT().CredentialConfigured().Return(true)
	client.EXPECT().FetchCurrent(mock.Anything, "Ankara").
		RunAndReturn(func(ctx context.Context, _ string) (*ports.CurrentConditions, error) {
			cancel()
			return nil, errors.NewNetworkError("failed to call OpenWeatherMap", ctx.Err())
		}).Once()
	metrics.EXPECT().RecordSearch("failed", mock.Anything).Once()

	result, err := uc.Search(ctx, opened.SessionID, "Ankara")

	require.NoError(t, err)
	assert.Equal(t, search.StatusFailed, result.Status)

	stored, err := uc.State(context.Background(), opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, search.StatusFailed, stored.Status)
	assert.False(t, stored.IsLoading())
	assert.Equal(t, search.MessageNetworkError, stored.ErrorMessage)
}
