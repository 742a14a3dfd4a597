package net

import (
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/teaplant/darjnet/internal/activations"
	"github.com/teaplant/darjnet/internal/data"
	"github.com/teaplant/darjnet/internal/label"
)

// Distinguisher configures the auxiliary classifier that separates real
// samples from generated ones during adversarial training. Its network is
// sized (generator answer width) -> HiddenNodes x HiddenLayers -> 2.
// Zero Cycles runs one nested epoch per generator epoch; a nil Activation
// uses Sigmoid.
type Distinguisher struct {
	LearningRate float64
	HiddenNodes  int
	HiddenLayers int
	Cycles       int
	Activation   activations.Activation
}

// Generative trains a generator network adversarially: each epoch the
// generator's outputs are mixed with the real samples, a distinguisher is
// trained to tell them apart, and the distinguisher's mean-squared-error
// feeds back as the generator's loss term.
//
// The loop owns both networks in memory for its whole duration. The
// distinguisher is still checkpointed to disk after every nested call for
// durability; each checkpoint replaces the previous one, and the final one
// is removed before the generator is persisted, so a finished run leaves
// exactly one file behind: the generator's model.
type Generative struct {
	LearningRate  float64
	MaxCycles     int
	Distinguisher Distinguisher
	Callbacks     []Callback
	Logger        *slog.Logger
	RNG           *rand.Rand
}

// Learn trains gen on the samples over MaxCycles epochs and returns the
// path of the persisted generator model. The sample slice is shuffled in
// place each epoch; the combined real/fake collection handed to the
// distinguisher is built from copies, so sample labels are never modified.
func (g Generative) Learn(gen *Network, samples []data.Sample, name string) (string, error) {
	rate := g.LearningRate
	if rate == 0 {
		rate = 0.1
	}
	cycles := g.MaxCycles
	if cycles == 0 {
		cycles = 1
	}
	log := g.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dAct := g.Distinguisher.Activation
	if dAct == nil {
		dAct = activations.Sigmoid{}
	}

	// The checkpoint keeps the generator's directory; only the file name
	// takes the distinguishing prefix.
	dir, base := filepath.Split(name)
	distName := filepath.Join(dir, "distinguishing"+base)

	categories := []label.Value{label.Bool(true), label.Bool(false)}
	nested := Classifier{
		LearningRate: g.Distinguisher.LearningRate,
		MaxCycles:    g.Distinguisher.Cycles,
		Logger:       g.Logger,
		RNG:          g.RNG,
	}

	for _, cb := range g.Callbacks {
		cb.OnTrainBegin(gen)
	}

	var dist *Network
	var checkpoint string
	for epoch := 0; epoch < cycles; epoch++ {
		data.Shuffle(samples, g.RNG)

		// Fabricated outputs are tagged fake, copies of the real rows
		// are tagged real; the collection is rebuilt every epoch.
		combined := make([]data.Sample, 0, 2*len(samples))
		for i := range samples {
			if err := gen.Forward(&samples[i]); err != nil {
				return "", err
			}
			combined = append(combined, data.Sample{
				Features: gen.Outputs(),
				Label:    label.Bool(false),
			})
			genuine := samples[i].Clone()
			genuine.Label = label.Bool(true)
			combined = append(combined, genuine)
		}

		if dist == nil {
			dist = New(len(gen.layers[gen.answer]), g.Distinguisher.HiddenNodes,
				2, g.Distinguisher.HiddenLayers, dAct, g.RNG)
		}
		res, err := nested.Learn(dist, combined, categories, distName)
		if err != nil {
			return "", &Error{Kind: NestedTrainingFailed, Op: "train distinguisher", Err: err}
		}

		// The stale checkpoint goes away as soon as the new one exists.
		if checkpoint != "" {
			if err := os.Remove(checkpoint); err != nil {
				return "", &Error{Kind: RemoveFailed, Op: "remove checkpoint", Path: checkpoint, Err: err}
			}
		}
		checkpoint = res.ModelPath

		gen.backpropagateLoss(rate, res.MSE)
		log.Debug("adversarial epoch complete", "name", name, "epoch", epoch,
			"distinguisher_mse", res.MSE)
		for _, cb := range g.Callbacks {
			cb.OnEpochEnd(epoch, res.MSE, gen)
		}
	}

	if checkpoint != "" {
		if err := os.Remove(checkpoint); err != nil {
			return "", &Error{Kind: RemoveFailed, Op: "remove checkpoint", Path: checkpoint, Err: err}
		}
	}

	path, err := gen.WriteModel(name, g.RNG)
	if err != nil {
		return "", err
	}
	for _, cb := range g.Callbacks {
		cb.OnTrainEnd(gen)
	}
	log.Info("adversarial training complete", "name", name, "model", path)
	return path, nil
}
