package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStorage is an in-memory storage, useful for tests and dry runs.
type MemoryStorage struct {
	blobs map[Key]string
	mutex *sync.RWMutex
}

// NewMemoryStorage creates a new in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		blobs: make(map[Key]string),
		mutex: new(sync.RWMutex),
	}
}

// MemoryShard creates a new in-memory shard
func MemoryShard() Shard {
	return func(shard string) (Persistence, error) {
		return NewMemoryStorage(), nil
	}
}

func (m *MemoryStorage) Store(k Key, value interface{}) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}

	m.blobs[k] = string(bb)
	return nil
}

func (m *MemoryStorage) Load(k Key, value interface{}) error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if v, ok := m.blobs[k]; ok {
		err := json.Unmarshal([]byte(v), value)
		if err != nil {
			return fmt.Errorf("could not unmarshal value: %w", CouldNotLoadErr)
		}
		return nil
	}
	return fmt.Errorf("blob missing for '%s': %w", k.Path(), NotFoundErr)
}
