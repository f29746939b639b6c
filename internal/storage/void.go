package storage

import "fmt"

// VoidStorage is a noop storage
type VoidStorage struct {
}

// NewVoidStorage creates a new noop storage
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

// VoidShard creates a new noop shard
func VoidShard(table string) Shard {
	return func(shard string) (Persistence, error) {
		return NewVoidStorage(), nil
	}
}
