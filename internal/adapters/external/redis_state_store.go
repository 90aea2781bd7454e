package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

const generationKeySuffix = ":gen"

// RedisStateStore implements the StateStore port using Redis. The generation
// counter lives next to the value and is WATCHed while the value is written.
type RedisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore connects to Redis and verifies the connection
func NewRedisStateStore(config *config.RedisConfig) (*RedisStateStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisStateStore{client: client}, nil
}

func generationKey(key string) string {
	return key + generationKeySuffix
}

func (r *RedisStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("state key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("state not found")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	return val, nil
}

func (r *RedisStateStore) NextGeneration(ctx context.Context, key string, ttl time.Duration) (uint64, error) {
	if err := validateStateArgs(key, ttl); err != nil {
		return 0, err
	}

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, generationKey(key))
		pipe.Expire(ctx, generationKey(key), ttl)
		return nil
	})
	if err != nil {
		return 0, errors.NewExternalAPIError("redis generation increment failed", err)
	}

	return uint64(incr.Val()), nil
}

func (r *RedisStateStore) SetIfCurrent(ctx context.Context, key string, generation uint64, value []byte, ttl time.Duration) (bool, error) {
	if err := validateStateArgs(key, ttl); err != nil {
		return false, err
	}
	if value == nil {
		return false, errors.NewValidationError("state value cannot be nil")
	}

	genKey := generationKey(key)
	stored := false

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Uint64()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, ttl)
			pipe.Expire(ctx, genKey, ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, genKey)

	// a concurrent INCR aborted the transaction, so this generation is no longer current
	if stderrors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewExternalAPIError("redis conditional set failed", err)
	}

	return stored, nil
}

func (r *RedisStateStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}

	if err := r.client.Del(ctx, key, generationKey(key)).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

// Close closes the Redis client connection
func (r *RedisStateStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisStateStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
