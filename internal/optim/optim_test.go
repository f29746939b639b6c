package optim

import (
	"math"
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/sixsense/rule-learn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSGD_Step(t *testing.T) {
	p := &model.Params{
		Weights: xmath.Vector{1, 2, 3},
		Bias:    0.5,
	}
	g := model.Grad{
		DW: xmath.Vector{0.1, -0.2, 0.3},
		DB: -0.4,
	}

	NewSGD(0.1).Step(p, g)

	assert.InDelta(t, 0.99, p.Weights[0], 1e-12)
	assert.InDelta(t, 2.02, p.Weights[1], 1e-12)
	assert.InDelta(t, 2.97, p.Weights[2], 1e-12)
	assert.InDelta(t, 0.54, p.Bias, 1e-12)
}

func TestAdam_FirstStep(t *testing.T) {
	// with bias correction the very first step has magnitude lr
	// along the negative gradient sign, regardless of the gradient scale
	p := &model.Params{
		Weights: xmath.Vector{0, 0, 0},
		Bias:    0,
	}
	g := model.Grad{
		DW: xmath.Vector{0.001, -42, 7},
		DB: 3,
	}

	lr := 0.001
	NewAdam(lr).Step(p, g)

	assert.InDelta(t, -lr, p.Weights[0], 1e-6)
	assert.InDelta(t, lr, p.Weights[1], 1e-6)
	assert.InDelta(t, -lr, p.Weights[2], 1e-6)
	assert.InDelta(t, -lr, p.Bias, 1e-6)
}

func TestAdam_ZeroGradient(t *testing.T) {
	p := &model.Params{
		Weights: xmath.Vector{1, 1, 1},
		Bias:    1,
	}
	g := model.Grad{
		DW: xmath.Vector{0, 0, 0},
		DB: 0,
	}

	NewAdam(0.001).Step(p, g)

	for _, w := range p.Weights {
		assert.False(t, math.IsNaN(w))
		assert.InDelta(t, 1, w, 1e-9)
	}
	assert.InDelta(t, 1, p.Bias, 1e-9)
}

func TestAdam_Convergence(t *testing.T) {
	// minimise a simple quadratic (w - target)^2 per coordinate
	target := xmath.Vector{0.5, -0.3, 0.8}
	p := &model.Params{
		Weights: xmath.Vector{0, 0, 0},
		Bias:    0,
	}

	adam := NewAdam(0.01)
	for i := 0; i < 2000; i++ {
		dw := xmath.Vec(3)
		for j := range p.Weights {
			dw[j] = 2 * (p.Weights[j] - target[j])
		}
		adam.Step(p, model.Grad{DW: dw, DB: 0})
	}

	for j := range target {
		require.InDelta(t, target[j], p.Weights[j], 1e-2, "weight %d", j)
	}
}
