package repository

import (
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/flexcharge/FlexCharge/internal/pkg/billingmodel"
	"github.com/flexcharge/FlexCharge/internal/pkg/cache"
)

// ActiveModelsKey is the storage slot holding the serialized selected
// billing-model set. The name is shared with the dashboard frontend, which
// mirrors the slot client-side.
const ActiveModelsKey = "flexcharge-billing-models"

// redisActiveModelStore persists the active set in the cache server so it
// survives restarts and is visible to every app instance.
type redisActiveModelStore struct{}

// NewRedisActiveModelStore creates the cache-backed active model store.
func NewRedisActiveModelStore() ActiveModelStore {
	return &redisActiveModelStore{}
}

func (s *redisActiveModelStore) Load() ([]billingmodel.SelectedModel, error) {
	raw, err := cache.Get(ActiveModelsKey)
	if err == redis.Nil {
		return []billingmodel.SelectedModel{}, nil
	}
	if err != nil {
		return nil, err
	}
	var set []billingmodel.SelectedModel
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *redisActiveModelStore) Save(set []billingmodel.SelectedModel) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return cache.Set(ActiveModelsKey, string(raw), 0)
}

// memoryActiveModelStore keeps the set in process memory. Used by tests
// and when no cache server is configured.
type memoryActiveModelStore struct {
	mu  sync.RWMutex
	set []billingmodel.SelectedModel
}

// NewMemoryActiveModelStore creates an in-memory active model store.
func NewMemoryActiveModelStore() ActiveModelStore {
	return &memoryActiveModelStore{}
}

func (s *memoryActiveModelStore) Load() ([]billingmodel.SelectedModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]billingmodel.SelectedModel, len(s.set))
	copy(out, s.set)
	return out, nil
}

func (s *memoryActiveModelStore) Save(set []billingmodel.SelectedModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = make([]billingmodel.SelectedModel, len(set))
	copy(s.set, set)
	return nil
}
