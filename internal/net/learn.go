package net

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/teaplant/darjnet/internal/data"
	"github.com/teaplant/darjnet/internal/label"
	"github.com/teaplant/darjnet/internal/metrics"
)

// Classifier trains a network for supervised classification: one answer
// node per category, target 1 on the node whose category matches a
// sample's label and 0 elsewhere.
//
// Zero-valued fields use defaults: LearningRate 0.1, MaxCycles 1. Logger
// nil discards; RNG nil uses the package-default non-deterministic source.
type Classifier struct {
	LearningRate float64
	MaxCycles    int
	Callbacks    []Callback
	Logger       *slog.Logger
	RNG          *rand.Rand
}

// Result reports a finished supervised training run: the persisted model's
// path, the final epoch's percentage of correctly classified samples, and
// its mean-squared-error.
type Result struct {
	ModelPath  string
	ErrPercent float64
	MSE        float64
}

// Learn trains n on the samples over MaxCycles epochs, persists the model
// under name, and returns the result. categories are assigned one per
// answer node, in order; every sample's label must be of the same kind as
// the categories. The sample slice is shuffled in place each epoch;
// sample labels are never modified.
func (c Classifier) Learn(n *Network, samples []data.Sample, categories []label.Value, name string) (Result, error) {
	rate := c.LearningRate
	if rate == 0 {
		rate = 0.1
	}
	cycles := c.MaxCycles
	if cycles == 0 {
		cycles = 1
	}
	log := c.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	answer := n.layers[n.answer]
	if len(categories) != len(answer) {
		return Result{}, errors.Errorf("net: %d categories for %d answer nodes",
			len(categories), len(answer))
	}
	for j := range answer {
		answer[j].category = categories[j]
	}

	for _, cb := range c.Callbacks {
		cb.OnTrainBegin(n)
	}

	var last metrics.Epoch
	for epoch := 0; epoch < cycles; epoch++ {
		var ep metrics.Epoch
		data.Shuffle(samples, c.RNG)
		for i := range samples {
			if err := n.Forward(&samples[i]); err != nil {
				return Result{}, err
			}
			for j := range answer {
				node := &answer[j]
				match, err := node.category.Equal(samples[i].Label)
				if err != nil {
					return Result{}, errors.Wrapf(err, "net: sample %d", i)
				}
				node.expected = 0
				if match {
					node.expected = 1
				}
				ep.Observe(node.output - node.expected)
			}
			correct, err := answer[n.brightest()].category.Equal(samples[i].Label)
			if err != nil {
				return Result{}, errors.Wrapf(err, "net: sample %d", i)
			}
			ep.Sample(correct)
			n.backpropagate(rate)
		}
		last = ep
		log.Debug("epoch complete", "name", name, "epoch", epoch,
			"mse", ep.MSE(), "correct_percent", ep.Percent())
		for _, cb := range c.Callbacks {
			cb.OnEpochEnd(epoch, ep.MSE(), n)
		}
	}

	path, err := n.WriteModel(name, c.RNG)
	if err != nil {
		return Result{}, err
	}
	for _, cb := range c.Callbacks {
		cb.OnTrainEnd(n)
	}
	log.Info("training complete", "name", name, "model", path,
		"mse", last.MSE(), "correct_percent", last.Percent())
	return Result{ModelPath: path, ErrPercent: last.Percent(), MSE: last.MSE()}, nil
}
