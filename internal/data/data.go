// Package data provides the sample type consumed by training and inference,
// plus CSV loading and feature standardization helpers.
package data

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/teaplant/darjnet/internal/label"
)

// Sample is one row of training or inference data: a feature vector and an
// optional label. A zero-valued Label marks an unlabeled sample.
type Sample struct {
	Features []float64
	Label    label.Value
}

// Clone returns a deep copy of the sample.
func (s Sample) Clone() Sample {
	features := make([]float64, len(s.Features))
	copy(features, s.Features)
	return Sample{Features: features, Label: s.Label}
}

// Shuffle permutes samples in place. A nil rng uses the package-default
// non-deterministic source; tests pass a seeded one.
func Shuffle(samples []Sample, rng *rand.Rand) {
	swap := func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	}
	if rng != nil {
		rng.Shuffle(len(samples), swap)
		return
	}
	rand.Shuffle(len(samples), swap)
}

// Standardize rescales every feature column to zero mean and unit standard
// deviation, in place. Columns with zero deviation are left centered only.
func Standardize(samples []Sample) {
	if len(samples) == 0 {
		return
	}
	col := make([]float64, len(samples))
	for j := range samples[0].Features {
		for i := range samples {
			col[i] = samples[i].Features[j]
		}
		mean := stat.Mean(col, nil)
		dev := stat.StdDev(col, nil)
		floats.AddConst(-mean, col)
		if dev > 0 {
			floats.Scale(1/dev, col)
		}
		for i := range samples {
			samples[i].Features[j] = col[i]
		}
	}
}
