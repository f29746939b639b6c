package sample

import (
	"math/rand"

	"github.com/drakos74/go-ex-machina/xmath"
)

// Label applies the labelling rule to the given feature vector.
// A vector is a positive sample if its first component is larger than
// the sum of the second and the fifth.
func Label(x xmath.Vector) float64 {
	if x[0] > x[1]+x[4] {
		return 1
	}
	return 0
}

// Generator produces uniform random feature vectors in [0,1).
type Generator struct {
	dim  int
	rand *rand.Rand
}

// NewGenerator creates a new generator for vectors of the given dimension.
func NewGenerator(dim int, seed int64) *Generator {
	return &Generator{
		dim:  dim,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Vector produces the next random feature vector.
func (g *Generator) Vector() xmath.Vector {
	v := xmath.Vec(g.dim)
	for i := 0; i < g.dim; i++ {
		v[i] = g.rand.Float64()
	}
	return v
}

// Dataset is an index-aligned set of feature vectors and labels.
// It is immutable once built.
type Dataset struct {
	X xmath.Matrix
	Y xmath.Vector
}

// New builds a dataset of n labelled samples from the given generator.
// There is no class balancing, the labels follow the rule on the random features.
func New(gen *Generator, n int) Dataset {
	x := xmath.Mat(n)
	y := xmath.Vec(n)
	for i := 0; i < n; i++ {
		v := gen.Vector()
		x[i] = v
		y[i] = Label(v)
	}
	return Dataset{X: x, Y: y}
}

// Len returns the number of samples in the dataset.
func (d Dataset) Len() int {
	return len(d.X)
}

// Positives returns the number of positive samples in the dataset.
func (d Dataset) Positives() int {
	var sum float64
	for _, y := range d.Y {
		sum += y
	}
	return int(sum)
}

// Batches partitions the dataset into contiguous non-overlapping batches of the given size.
// A trailing remainder smaller than the batch size is dropped.
func (d Dataset) Batches(size int) []Dataset {
	if size <= 0 {
		return nil
	}
	n := d.Len() / size
	batches := make([]Dataset, 0, n)
	for i := 0; i < n; i++ {
		batches = append(batches, Dataset{
			X: d.X[i*size : (i+1)*size],
			Y: d.Y[i*size : (i+1)*size],
		})
	}
	return batches
}
