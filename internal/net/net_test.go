// Package net provides unit tests for network construction and the
// forward pass.
package net

import (
	"math"
	"math/rand"
	"testing"

	"github.com/teaplant/darjnet/internal/activations"
	"github.com/teaplant/darjnet/internal/data"
)

// TestParameterCount tests that the parameter count equals the sum over
// all nodes of links+1 for a range of topologies.
func TestParameterCount(t *testing.T) {
	tests := []struct {
		inputs, hidden, outputs, hiddenLayers int
	}{
		{2, 2, 2, 1},
		{10, 40, 2, 1},
		{3, 5, 4, 3},
		{2, 0, 1, 0},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		n := New(tt.inputs, tt.hidden, tt.outputs, tt.hiddenLayers, activations.Sigmoid{}, nil)

		want := 0
		for _, layer := range n.layers {
			for j := range layer {
				want += layer[j].links + 1
			}
		}
		if n.Parameters() != want {
			t.Errorf("New(%d,%d,%d,%d) parameters = %d, want %d",
				tt.inputs, tt.hidden, tt.outputs, tt.hiddenLayers, n.Parameters(), want)
		}
	}
}

// TestParameterCountScenario tests the count for the 2-2-2 reference
// topology by hand: 2 sensors (bias only), 2 hidden and 2 answer nodes
// with 2 links each.
func TestParameterCountScenario(t *testing.T) {
	n := New(2, 2, 2, 1, activations.Sigmoid{}, nil)
	if n.Parameters() != 14 {
		t.Errorf("parameters = %d, want 14", n.Parameters())
	}
}

// TestTopology tests layer widths and link counts.
func TestTopology(t *testing.T) {
	n := New(3, 5, 2, 2, activations.Tanh{}, nil)

	widths := n.LayerWidths()
	want := []int{3, 5, 5, 2}
	if len(widths) != len(want) {
		t.Fatalf("layer count = %d, want %d", len(widths), len(want))
	}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("layer %d width = %d, want %d", i, widths[i], want[i])
		}
	}

	for l := 1; l < len(n.layers); l++ {
		for j := range n.layers[l] {
			if n.layers[l][j].links != len(n.layers[l-1]) {
				t.Errorf("layer %d node %d links = %d, want %d",
					l, j, n.layers[l][j].links, len(n.layers[l-1]))
			}
		}
	}

	for _, layer := range n.layers {
		for j := range layer {
			if len(layer[j].linkWeights) != layer[j].links ||
				len(layer[j].linkVals) != layer[j].links {
				t.Errorf("node slices out of step with link count %d", layer[j].links)
			}
		}
	}
}

// TestZeroHiddenLayers tests the direct sensor-to-answer topology.
func TestZeroHiddenLayers(t *testing.T) {
	n := New(4, 0, 3, 0, activations.Linear{}, nil)

	widths := n.LayerWidths()
	if len(widths) != 2 || widths[0] != 4 || widths[1] != 3 {
		t.Fatalf("layer widths = %v, want [4 3]", widths)
	}

	s := data.Sample{Features: []float64{1, 2, 3, 4}}
	if err := n.Forward(&s); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	if len(n.Outputs()) != 3 {
		t.Errorf("output width = %d, want 3", len(n.Outputs()))
	}
}

// TestWeightRange tests that initial weights and biases fall in [-0.5, 0.5).
func TestWeightRange(t *testing.T) {
	n := New(10, 20, 5, 2, activations.Sigmoid{}, rand.New(rand.NewSource(1)))

	for _, layer := range n.layers {
		for j := range layer {
			if layer[j].bias < -0.5 || layer[j].bias >= 0.5 {
				t.Fatalf("bias %v outside [-0.5, 0.5)", layer[j].bias)
			}
			for _, w := range layer[j].linkWeights {
				if w < -0.5 || w >= 0.5 {
					t.Fatalf("weight %v outside [-0.5, 0.5)", w)
				}
			}
		}
	}
}

// TestForwardDeterministic tests that two passes with unchanged weights
// produce identical cached outputs.
func TestForwardDeterministic(t *testing.T) {
	n := New(3, 4, 2, 2, activations.Sigmoid{}, rand.New(rand.NewSource(42)))
	s := data.Sample{Features: []float64{0.1, 0.9, 0.5}}

	if err := n.Forward(&s); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	first := n.Outputs()

	if err := n.Forward(&s); err != nil {
		t.Fatalf("second Forward returned error: %v", err)
	}
	second := n.Outputs()

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("output %d changed between passes: %v vs %v", i, first[i], second[i])
		}
	}
}

// TestForwardWidthMismatch tests that a sample whose width does not match
// the sensor layer is rejected, never indexed out of bounds.
func TestForwardWidthMismatch(t *testing.T) {
	n := New(3, 2, 1, 1, activations.Sigmoid{}, nil)

	for _, features := range [][]float64{{}, {1}, {1, 2}, {1, 2, 3, 4}} {
		s := data.Sample{Features: features}
		if err := n.Forward(&s); err == nil {
			t.Errorf("Forward with %d features should fail", len(features))
		}
	}
}

// TestForwardSensorCopy tests that sensor outputs are copied directly from
// the sample, not passed through the activation.
func TestForwardSensorCopy(t *testing.T) {
	n := New(2, 2, 1, 1, activations.Sigmoid{}, nil)
	s := data.Sample{Features: []float64{-3, 7}}

	if err := n.Forward(&s); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	for i := range n.layers[n.sensor] {
		if n.layers[n.sensor][i].output != s.Features[i] {
			t.Errorf("sensor %d output = %v, want %v",
				i, n.layers[n.sensor][i].output, s.Features[i])
		}
	}
}

// TestForwardLinear tests the weighted sum against a hand-built network.
func TestForwardLinear(t *testing.T) {
	n := New(2, 0, 1, 0, activations.Linear{}, nil)
	node := &n.layers[n.answer][0]
	node.linkWeights[0] = 0.5
	node.linkWeights[1] = -1
	node.bias = 0.25

	s := data.Sample{Features: []float64{2, 3}}
	if err := n.Forward(&s); err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}

	want := 0.5*2 + (-1)*3 + 0.25
	if math.Abs(n.Outputs()[0]-want) > 1e-12 {
		t.Errorf("output = %v, want %v", n.Outputs()[0], want)
	}
}
