package external

import (
	"fmt"

	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

type StateStoreFactory struct{}

func NewStateStoreFactory() *StateStoreFactory {
	return &StateStoreFactory{}
}

func (f *StateStoreFactory) CreateStateStore(cfg *config.SessionConfig) (ports.StateStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("session config cannot be nil", nil)
	}

	switch cfg.StoreType {
	case config.StoreTypeMemory:
		return NewMemoryStateStore(), nil
	case config.StoreTypeRedis:
		return NewRedisStateStore(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported session store type: %s", cfg.StoreType.String()), nil)
	}
}
