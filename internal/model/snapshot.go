package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/sixsense/rule-learn/internal/storage"
)

const (
	// Format is the format tag of the persisted snapshot blob.
	Format = "linear-sigmoid"
	// Version is the current snapshot schema version.
	Version = 1
)

// ErrIncompatible marks a snapshot that does not match the expected
// format, version or dimension.
var ErrIncompatible = errors.New("incompatible snapshot")

// Snapshot is the versioned persisted form of the model parameters.
// Format, version and dimension act as the blob header and make
// incompatibility detection deterministic at load time.
type Snapshot struct {
	Format     string    `json:"format"`
	Version    int       `json:"version"`
	Dim        int       `json:"dim"`
	RunID      string    `json:"run_id"`
	Iterations int       `json:"iterations"`
	Weights    []float64 `json:"weights"`
	Bias       float64   `json:"bias"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snapshot captures the current parameters of the model.
func (l *Linear) Snapshot(runID string, iterations int) Snapshot {
	w := make([]float64, l.dim)
	copy(w, l.params.Weights)
	return Snapshot{
		Format:     Format,
		Version:    Version,
		Dim:        l.dim,
		RunID:      runID,
		Iterations: iterations,
		Weights:    w,
		Bias:       l.params.Bias,
		CreatedAt:  time.Now(),
	}
}

// Save persists the current parameters of the model under the given key.
func (l *Linear) Save(store storage.Persistence, k storage.Key, runID string, iterations int) error {
	err := store.Store(k, l.Snapshot(runID, iterations))
	if err != nil {
		return fmt.Errorf("could not store snapshot '%s': %w", k.Path(), err)
	}
	return nil
}

// Restore overwrites the model parameters from the given snapshot.
func (l *Linear) Restore(s Snapshot) error {
	if s.Format != Format {
		return fmt.Errorf("format '%s' instead of '%s': %w", s.Format, Format, ErrIncompatible)
	}
	if s.Version != Version {
		return fmt.Errorf("version '%d' instead of '%d': %w", s.Version, Version, ErrIncompatible)
	}
	if s.Dim != l.dim || len(s.Weights) != l.dim {
		return fmt.Errorf("dimension '%d' with '%d' weights instead of '%d': %w", s.Dim, len(s.Weights), l.dim, ErrIncompatible)
	}
	l.params.Weights = xmath.Vec(l.dim).With(s.Weights...)
	l.params.Bias = s.Bias
	return nil
}

// Load creates a fresh model of the given dimension from the snapshot
// persisted under the given key.
func Load(store storage.Persistence, k storage.Key, dim int) (*Linear, error) {
	snapshot := Snapshot{}
	err := store.Load(k, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("could not load snapshot '%s': %w", k.Path(), err)
	}
	l := NewLinear(dim)
	err = l.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("could not restore snapshot '%s': %w", k.Path(), err)
	}
	return l, nil
}
