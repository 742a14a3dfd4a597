// Package activations provides the closed set of activation functions
// consumed by the forward and backward passes.
//
// Derivatives are expressed in terms of the activation's output value rather
// than its pre-activation sum, because the engine caches node outputs only.
// Step is the one member whose true derivative is zero almost everywhere;
// it reports a unit derivative so step networks still receive weight updates
// (the perceptron rule).
package activations

import (
	"math"

	"github.com/pkg/errors"
)

// Activation is an activation function with a derivative and a stable
// keyword used by the model codec.
type Activation interface {
	// Activate computes f(x).
	Activate(x float64) float64

	// Derivative computes f'(x) given out = f(x).
	Derivative(out float64) float64

	// String returns the codec keyword for this function.
	String() string
}

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + exp(-x)).
func (Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative computes out * (1 - out).
func (Sigmoid) Derivative(out float64) float64 {
	return out * (1 - out)
}

func (Sigmoid) String() string { return "sigmoid" }

// Linear passes values through unchanged.
type Linear struct{}

// Activate returns x.
func (Linear) Activate(x float64) float64 { return x }

// Derivative returns 1.
func (Linear) Derivative(out float64) float64 { return 1 }

func (Linear) String() string { return "linear" }

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x).
func (Tanh) Activate(x float64) float64 { return math.Tanh(x) }

// Derivative computes 1 - out^2.
func (Tanh) Derivative(out float64) float64 { return 1 - out*out }

func (Tanh) String() string { return "tanh" }

// Step thresholds at zero: 1 for positive input, 0 otherwise.
type Step struct{}

// Activate returns 1 if x > 0, else 0.
func (Step) Activate(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Derivative returns 1. The true derivative is zero almost everywhere,
// which would freeze training.
func (Step) Derivative(out float64) float64 { return 1 }

func (Step) String() string { return "step" }

// Parse returns the Activation named by the given codec keyword.
func Parse(s string) (Activation, error) {
	switch s {
	case "sigmoid":
		return Sigmoid{}, nil
	case "linear":
		return Linear{}, nil
	case "tanh":
		return Tanh{}, nil
	case "step":
		return Step{}, nil
	}
	return nil, errors.Errorf("activations: unknown function %q", s)
}
