package sample

import (
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	type test struct {
		vector xmath.Vector
		label  float64
	}

	tests := map[string]test{
		"positive": {
			vector: xmath.Vector{0.9, 0.1, 0.5, 0.5, 0.1, 0.5},
			label:  1,
		},
		"negative": {
			vector: xmath.Vector{0.1, 0.5, 0.5, 0.5, 0.5, 0.5},
			label:  0,
		},
		"boundary-is-negative": {
			vector: xmath.Vector{0.6, 0.3, 0.5, 0.5, 0.3, 0.5},
			label:  0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.label, Label(tt.vector))
		})
	}
}

func TestLabel_Rule(t *testing.T) {
	gen := NewGenerator(6, 42)
	for i := 0; i < 10000; i++ {
		v := gen.Vector()
		label := Label(v)
		if v[0] > v[1]+v[4] {
			require.Equal(t, 1.0, label, "vector %v", v)
		} else {
			require.Equal(t, 0.0, label, "vector %v", v)
		}
	}
}

func TestGenerator_Range(t *testing.T) {
	gen := NewGenerator(6, 11)
	for i := 0; i < 1000; i++ {
		v := gen.Vector()
		require.Len(t, v, 6)
		for _, x := range v {
			require.GreaterOrEqual(t, x, 0.0)
			require.Less(t, x, 1.0)
		}
	}
}

func TestNew_Alignment(t *testing.T) {
	gen := NewGenerator(6, 7)
	ds := New(gen, 500)

	assert.Equal(t, 500, ds.Len())
	assert.Equal(t, 500, len(ds.X))
	assert.Equal(t, 500, len(ds.Y))

	for i, row := range ds.X {
		require.Equal(t, Label(row), ds.Y[i])
	}
}

func TestNew_Empty(t *testing.T) {
	gen := NewGenerator(6, 7)
	ds := New(gen, 0)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Batches(20))
}

func TestDataset_Batches(t *testing.T) {
	type test struct {
		samples int
		size    int
		batches int
	}

	tests := map[string]test{
		"exact":            {samples: 6000, size: 20, batches: 300},
		"remainder-drops":  {samples: 45, size: 20, batches: 2},
		"oversized-batch":  {samples: 10, size: 20, batches: 0},
		"non-positive":     {samples: 10, size: 0, batches: 0},
		"single-per-batch": {samples: 5, size: 1, batches: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gen := NewGenerator(6, 3)
			ds := New(gen, tt.samples)
			batches := ds.Batches(tt.size)
			assert.Equal(t, tt.batches, len(batches))
			for _, b := range batches {
				assert.Equal(t, tt.size, b.Len())
			}
		})
	}
}

func TestDataset_BatchesContiguous(t *testing.T) {
	gen := NewGenerator(6, 3)
	ds := New(gen, 40)
	batches := ds.Batches(20)
	require.Len(t, batches, 2)

	assert.Equal(t, ds.X[0], batches[0].X[0])
	assert.Equal(t, ds.X[19], batches[0].X[19])
	assert.Equal(t, ds.X[20], batches[1].X[0])
	assert.Equal(t, ds.Y[39], batches[1].Y[19])
}

func TestDataset_Positives(t *testing.T) {
	gen := NewGenerator(6, 3)
	ds := New(gen, 1000)

	var count int
	for _, y := range ds.Y {
		if y == 1 {
			count++
		}
	}
	assert.Equal(t, count, ds.Positives())
	// the rule should produce both classes on uniform data
	assert.Greater(t, ds.Positives(), 0)
	assert.Less(t, ds.Positives(), 1000)
}
