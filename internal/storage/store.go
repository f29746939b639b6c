package storage

import (
	"errors"
	"fmt"
)

var (
	// DefaultDir is the root of the file based storage implementations.
	// It is a variable to be able to adjust for the tests.
	DefaultDir = "file-storage"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// Key is the storage key for a general implementation
type Key struct {
	Hash  int64  `json:"hash"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Name, k.Hash, k.Label)
}

// Persistence is a batch storage wrapper for blobs of data.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
