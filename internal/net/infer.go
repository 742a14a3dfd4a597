package net

import (
	"math/rand"

	"github.com/teaplant/darjnet/internal/data"
	"github.com/teaplant/darjnet/internal/label"
)

// Test runs inference: the samples are shuffled in place, forwarded one by
// one, and the answer-layer outputs collected as unlabeled samples. No
// weight is modified; only forward-pass errors can occur. A nil rng uses
// the package-default non-deterministic source; reproducible runs pass a
// seeded one.
func (n *Network) Test(samples []data.Sample, rng *rand.Rand) ([]data.Sample, error) {
	data.Shuffle(samples, rng)
	outputs := make([]data.Sample, 0, len(samples))
	for i := range samples {
		if err := n.Forward(&samples[i]); err != nil {
			return nil, err
		}
		outputs = append(outputs, data.Sample{Features: n.Outputs()})
	}
	return outputs, nil
}

// Readout converts the answer layer's cached outputs into labels of the
// requested kind: Integer truncates, Boolean thresholds at > 0, Float
// passes through, Text maps to a single ASCII character. An output outside
// the requested kind's representable range is a ConversionFailed error.
func (n *Network) Readout(kind label.Kind) ([]label.Value, error) {
	answer := n.layers[n.answer]
	values := make([]label.Value, 0, len(answer))
	for j := range answer {
		v, err := label.FromOutput(kind, answer[j].output)
		if err != nil {
			return nil, &Error{Kind: ConversionFailed, Op: "readout", Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
