package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const searchStateKeyPrefix = "search:session:"

// SearchStateAdapter bridges the generic StateStore to the SearchStateRepository port
type SearchStateAdapter struct {
	store ports.StateStore
	ttl   time.Duration
}

// NewSearchStateAdapter creates a search state repository on top of a state store
func NewSearchStateAdapter(store ports.StateStore, ttl time.Duration) ports.SearchStateRepository {
	return &SearchStateAdapter{
		store: store,
		ttl:   ttl,
	}
}

func searchStateKey(sessionID string) string {
	return searchStateKeyPrefix + sessionID
}

// Load retrieves the stored state of a session
func (a *SearchStateAdapter) Load(ctx context.Context, sessionID string) (*ports.SearchStateData, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	data, err := a.store.Get(ctx, searchStateKey(sessionID))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, err
	}

	var state ports.SearchStateData
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.NewExternalAPIError("failed to deserialize search state", err)
	}

	return &state, nil
}

// NextGeneration starts a new search generation for the session
func (a *SearchStateAdapter) NextGeneration(ctx context.Context, sessionID string) (uint64, error) {
	if sessionID == "" {
		return 0, errors.NewValidationError("session id cannot be empty")
	}
	return a.store.NextGeneration(ctx, searchStateKey(sessionID), a.ttl)
}

// Publish stores the state if its generation is still the session's latest
func (a *SearchStateAdapter) Publish(ctx context.Context, state *ports.SearchStateData) (bool, error) {
	if state == nil {
		return false, errors.NewValidationError("search state cannot be nil")
	}
	if state.SessionID == "" {
		return false, errors.NewValidationError("session id cannot be empty")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return false, errors.NewExternalAPIError("failed to serialize search state", err)
	}

	return a.store.SetIfCurrent(ctx, searchStateKey(state.SessionID), state.Generation, data, a.ttl)
}
