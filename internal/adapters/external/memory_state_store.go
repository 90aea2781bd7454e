package external

import (
	"context"
	"sync"
	"time"

	"weatherlookup.app/pkg/errors"
)

// MemoryStateStore implements the StateStore port in process memory
type MemoryStateStore struct {
	entries map[string]*memoryStateEntry
	mutex   sync.Mutex
	now     func() time.Time
}

type memoryStateEntry struct {
	generation uint64
	value      []byte
	expiresAt  time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[string]*memoryStateEntry),
		now:     time.Now,
	}
}

func (s *MemoryStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("state key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.entries[key]
	if !exists || entry.value == nil {
		return nil, errors.NewNotFoundError("state not found")
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, errors.NewNotFoundError("state not found")
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

func (s *MemoryStateStore) NextGeneration(ctx context.Context, key string, ttl time.Duration) (uint64, error) {
	if err := validateStateArgs(key, ttl); err != nil {
		return 0, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists {
		s.purgeExpiredLocked(now)
		entry = &memoryStateEntry{}
		s.entries[key] = entry
	} else if now.After(entry.expiresAt) {
		entry.value = nil
	}

	// the counter survives expiry so an in-flight search never shares a generation with a new one
	entry.generation++
	entry.expiresAt = now.Add(ttl)
	return entry.generation, nil
}

func (s *MemoryStateStore) SetIfCurrent(ctx context.Context, key string, generation uint64, value []byte, ttl time.Duration) (bool, error) {
	if err := validateStateArgs(key, ttl); err != nil {
		return false, err
	}
	if value == nil {
		return false, errors.NewValidationError("state value cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.entries[key]
	if !exists || entry.generation != generation {
		return false, nil
	}

	entry.value = make([]byte, len(value))
	copy(entry.value, value)
	entry.expiresAt = s.now().Add(ttl)
	return true, nil
}

func (s *MemoryStateStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.entries, key)
	return nil
}

// Len returns the number of tracked keys, expired or not
func (s *MemoryStateStore) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.entries)
}

// purgeExpiredLocked drops expired entries. Must be called while holding the mutex.
func (s *MemoryStateStore) purgeExpiredLocked(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}

func validateStateArgs(key string, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("state key cannot be empty")
	}
	if ttl <= 0 {
		return errors.NewValidationError("state TTL must be positive")
	}
	return nil
}
