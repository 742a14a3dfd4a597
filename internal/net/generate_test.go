// Package net provides unit tests for the adversarial trainer and
// inference.
package net

import (
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/teaplant/darjnet/internal/activations"
	"github.com/teaplant/darjnet/internal/data"
	"github.com/teaplant/darjnet/internal/label"
)

// TestGenerativeLearn runs the reference scenario: a 2-2-2 generator
// trained for 10 cycles over two labeled rows must persist a readable
// model whose layer widths survive the round trip.
func TestGenerativeLearn(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(33))
	gen := New(2, 2, 2, 1, activations.Sigmoid{}, rng)

	samples := []data.Sample{
		{Features: []float64{0, 1}, Label: label.Bool(true)},
		{Features: []float64{1, 0}, Label: label.Bool(false)},
	}
	trainer := Generative{
		LearningRate: 0.5,
		MaxCycles:    10,
		Distinguisher: Distinguisher{
			LearningRate: 0.5,
			HiddenNodes:  10,
			HiddenLayers: 1,
			Activation:   activations.Sigmoid{},
		},
		RNG: rng,
	}

	path, err := trainer.Learn(gen, samples, filepath.Join(dir, "gen"))
	if err != nil {
		t.Fatalf("Learn returned error: %v", err)
	}

	base := filepath.Base(path)
	if !regexp.MustCompile(`^model_gen_\d+\.darj$`).MatchString(base) {
		t.Errorf("model file %q does not match model_gen_<u32>.darj", base)
	}

	loaded, err := ReadModel(path)
	if err != nil {
		t.Fatalf("ReadModel returned error: %v", err)
	}
	widths := loaded.LayerWidths()
	if len(widths) != 3 || widths[0] != 2 || widths[1] != 2 || widths[2] != 2 {
		t.Errorf("reloaded layer widths = %v, want [2 2 2]", widths)
	}
}

// TestGenerativeLeavesOnlyGeneratorFile tests that no distinguishing
// checkpoint from any epoch survives a completed run.
func TestGenerativeLeavesOnlyGeneratorFile(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(17))
	gen := New(3, 4, 3, 1, activations.Sigmoid{}, rng)

	samples := []data.Sample{
		{Features: []float64{0.1, 0.5, 0.9}},
		{Features: []float64{0.2, 0.4, 0.8}},
		{Features: []float64{0.3, 0.6, 0.7}},
	}
	trainer := Generative{
		LearningRate: 0.5,
		MaxCycles:    5,
		Distinguisher: Distinguisher{
			LearningRate: 0.5,
			HiddenNodes:  4,
			HiddenLayers: 1,
		},
		RNG: rng,
	}

	path, err := trainer.Learn(gen, samples, filepath.Join(dir, "only"))
	if err != nil {
		t.Fatalf("Learn returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("directory holds %v, want only the generator model", names)
	}
	if entries[0].Name() != filepath.Base(path) {
		t.Errorf("surviving file = %q, want %q", entries[0].Name(), filepath.Base(path))
	}
	if strings.Contains(entries[0].Name(), "distinguishing") {
		t.Errorf("a distinguishing checkpoint survived: %q", entries[0].Name())
	}
}

// TestGenerativeForwardError tests that a feature-width mismatch aborts
// the run with a reported error.
func TestGenerativeForwardError(t *testing.T) {
	gen := New(4, 2, 2, 1, activations.Sigmoid{}, nil)
	samples := []data.Sample{{Features: []float64{1, 2}}}

	_, err := Generative{MaxCycles: 1}.Learn(gen, samples, "badwidth")
	if err == nil {
		t.Fatal("Learn with mismatched sample width should fail")
	}
}

// TestTest tests inference: one unlabeled output sample per input, answer
// layer wide, with no weight mutation.
func TestTest(t *testing.T) {
	n := New(2, 3, 2, 1, activations.Sigmoid{}, rand.New(rand.NewSource(2)))
	samples := []data.Sample{
		{Features: []float64{0, 1}},
		{Features: []float64{1, 0}},
		{Features: []float64{1, 1}},
	}

	before := snapshotWeights(n)
	outputs, err := n.Test(samples, nil)
	if err != nil {
		t.Fatalf("Test returned error: %v", err)
	}

	if len(outputs) != len(samples) {
		t.Fatalf("output count = %d, want %d", len(outputs), len(samples))
	}
	for i, out := range outputs {
		if len(out.Features) != 2 {
			t.Errorf("output %d width = %d, want 2", i, len(out.Features))
		}
		if out.Label.IsValid() {
			t.Errorf("output %d should be unlabeled", i)
		}
	}

	after := snapshotWeights(n)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("Test mutated network weights")
		}
	}
}

// TestTestSeededRNG tests that inference with a seeded source is
// reproducible: the same seed yields the same shuffle order and outputs.
func TestTestSeededRNG(t *testing.T) {
	n := New(1, 2, 1, 1, activations.Sigmoid{}, rand.New(rand.NewSource(4)))
	makeSamples := func() []data.Sample {
		return []data.Sample{
			{Features: []float64{0.1}}, {Features: []float64{0.3}},
			{Features: []float64{0.5}}, {Features: []float64{0.7}},
			{Features: []float64{0.9}},
		}
	}

	first, err := n.Test(makeSamples(), rand.New(rand.NewSource(13)))
	if err != nil {
		t.Fatalf("Test returned error: %v", err)
	}
	second, err := n.Test(makeSamples(), rand.New(rand.NewSource(13)))
	if err != nil {
		t.Fatalf("second Test returned error: %v", err)
	}

	for i := range first {
		if first[i].Features[0] != second[i].Features[0] {
			t.Fatalf("output %d differs across seeded runs: %v vs %v",
				i, first[i].Features[0], second[i].Features[0])
		}
	}
}

func snapshotWeights(n *Network) []float64 {
	var ws []float64
	for _, layer := range n.layers {
		for j := range layer {
			ws = append(ws, layer[j].linkWeights...)
			ws = append(ws, layer[j].bias)
		}
	}
	return ws
}
