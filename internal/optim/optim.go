package optim

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/sixsense/rule-learn/internal/model"
)

// Optimizer applies one parameter update for the given gradient.
type Optimizer interface {
	Step(p *model.Params, g model.Grad)
}

// SGD is plain gradient descent with a fixed learning rate.
type SGD struct {
	lr float64
}

// NewSGD creates a new plain gradient descent optimizer.
func NewSGD(lr float64) *SGD {
	return &SGD{lr: lr}
}

// Step moves each parameter against its gradient by the learning rate.
func (s *SGD) Step(p *model.Params, g model.Grad) {
	for i := range p.Weights {
		p.Weights[i] -= s.lr * g.DW[i]
	}
	p.Bias -= s.lr * g.DB
}

// Adam is the adaptive moment estimation optimizer with bias correction.
// The defaults match the usual beta1=0.9, beta2=0.999, eps=1e-8 constants.
type Adam struct {
	lr      float64
	beta1   float64
	beta2   float64
	epsilon float64

	t      int
	mw, vw xmath.Vector
	mb, vb float64
}

// NewAdam creates a new adam optimizer with the default moment constants.
func NewAdam(lr float64) *Adam {
	return &Adam{
		lr:      lr,
		beta1:   0.9,
		beta2:   0.999,
		epsilon: 1e-8,
	}
}

// Step updates the first and second moment estimates and applies the
// bias corrected update to each parameter.
func (a *Adam) Step(p *model.Params, g model.Grad) {
	if a.mw == nil {
		a.mw = xmath.Vec(len(p.Weights))
		a.vw = xmath.Vec(len(p.Weights))
	}
	a.t++
	b1Corr := 1 - math.Pow(a.beta1, float64(a.t))
	b2Corr := 1 - math.Pow(a.beta2, float64(a.t))

	for i := range p.Weights {
		a.mw[i] = a.beta1*a.mw[i] + (1-a.beta1)*g.DW[i]
		a.vw[i] = a.beta2*a.vw[i] + (1-a.beta2)*g.DW[i]*g.DW[i]
		mHat := a.mw[i] / b1Corr
		vHat := a.vw[i] / b2Corr
		p.Weights[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.epsilon)
	}

	a.mb = a.beta1*a.mb + (1-a.beta1)*g.DB
	a.vb = a.beta2*a.vb + (1-a.beta2)*g.DB*g.DB
	p.Bias -= a.lr * (a.mb / b1Corr) / (math.Sqrt(a.vb/b2Corr) + a.epsilon)
}
