package model

import (
	stdmath "math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Params are the learnable parameters of the linear model.
// They are mutated in place by the optimizer on each training step.
type Params struct {
	Weights xmath.Vector
	Bias    float64
}

// Grad is the gradient of the loss with respect to the model parameters.
type Grad struct {
	DW xmath.Vector
	DB float64
}

// Linear is a single affine layer followed by a sigmoid activation.
// The squared error loss on the sigmoid output is a deliberate property
// of this model and not to be swapped for cross-entropy.
type Linear struct {
	dim    int
	params Params
}

// NewLinear creates a new linear model of the given input dimension.
func NewLinear(dim int) *Linear {
	initW := xmath.Rand(-1, 1, stdmath.Sqrt)
	initB := xmath.Rand(-1, 1, stdmath.Sqrt)
	return &Linear{
		dim: dim,
		params: Params{
			Weights: initW(dim, 0),
			Bias:    initB(1, 0)[0],
		},
	}
}

// Dim returns the input dimension of the model.
func (l *Linear) Dim() int {
	return l.dim
}

// Params exposes the learnable parameters for the optimizer.
func (l *Linear) Params() *Params {
	return &l.params
}

// Predict computes the probability for the given feature vector.
// The output is always within the open interval (0,1).
// The sigmoid itself saturates to exactly 0 or 1 in float64 for large
// logits, so the output is clamped to the nearest representable values.
func (l *Linear) Predict(x xmath.Vector) float64 {
	p := ml.Sigmoid.F(l.params.Weights.Dot(x) + l.params.Bias)
	if p >= 1 {
		return stdmath.Nextafter(1, 0)
	}
	if p <= 0 {
		return stdmath.SmallestNonzeroFloat64
	}
	return p
}

// PredictBatch computes the probability for each row of the given batch.
func (l *Linear) PredictBatch(x xmath.Matrix) xmath.Vector {
	p := xmath.Vec(len(x))
	for i, row := range x {
		p[i] = l.Predict(row)
	}
	return p
}

// Loss computes the mean squared error of the predictions against the given labels.
func (l *Linear) Loss(x xmath.Matrix, y xmath.Vector) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	var sum float64
	for i, row := range x {
		d := l.Predict(row) - y[i]
		sum += d * d
	}
	return sum / float64(n)
}

// Gradients computes the closed form gradient of the mean squared error
// through the sigmoid and the affine layer for the given batch.
// The gradient is fresh per call, nothing accumulates across batches.
func (l *Linear) Gradients(x xmath.Matrix, y xmath.Vector) Grad {
	n := float64(len(x))
	dw := xmath.Vec(l.dim)
	var db float64
	for i, row := range x {
		p := l.Predict(row)
		g := 2 * (p - y[i]) / n * ml.Sigmoid.D(p)
		for j, v := range row {
			dw[j] += g * v
		}
		db += g
	}
	return Grad{DW: dw, DB: db}
}
