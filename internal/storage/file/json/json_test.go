package json

import (
	"errors"
	"testing"

	"github.com/sixsense/rule-learn/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

func TestBlobStorage_RoundTrip(t *testing.T) {
	storage.DefaultDir = t.TempDir()
	store := NewJsonBlob("models", "linear")
	k := storage.Key{Name: "linear", Label: "weights"}

	value := blob{Weights: []float64{1, 2, 3, 4, 5, 6}, Bias: -0.5}
	require.NoError(t, store.Store(k, value))

	loaded := blob{}
	require.NoError(t, store.Load(k, &loaded))
	assert.Equal(t, value, loaded)
}

func TestBlobStorage_Overwrite(t *testing.T) {
	storage.DefaultDir = t.TempDir()
	store := NewJsonBlob("models", "linear")
	k := storage.Key{Name: "linear", Label: "weights"}

	require.NoError(t, store.Store(k, blob{Bias: 1}))
	require.NoError(t, store.Store(k, blob{Bias: 2}))

	loaded := blob{}
	require.NoError(t, store.Load(k, &loaded))
	assert.Equal(t, 2.0, loaded.Bias)
}

func TestBlobStorage_Missing(t *testing.T) {
	storage.DefaultDir = t.TempDir()
	store := NewJsonBlob("models", "linear")

	loaded := blob{}
	err := store.Load(storage.Key{Name: "linear", Label: "missing"}, &loaded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.NotFoundErr))
}

func TestBlobShard(t *testing.T) {
	storage.DefaultDir = t.TempDir()
	shard := BlobShard("models")

	store, err := shard("linear")
	require.NoError(t, err)

	k := storage.Key{Name: "linear", Label: "weights"}
	require.NoError(t, store.Store(k, blob{Bias: 0.25}))

	loaded := blob{}
	require.NoError(t, store.Load(k, &loaded))
	assert.Equal(t, 0.25, loaded.Bias)
}
