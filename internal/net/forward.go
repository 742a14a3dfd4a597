package net

import (
	"github.com/pkg/errors"

	"github.com/teaplant/darjnet/internal/data"
)

// Forward propagates one sample through the network, layer by layer from
// the sensor layer to the answer layer, overwriting every node's cached
// link values and output. Results are read back with Outputs.
//
// The sample's feature count must equal the sensor layer width; a mismatch
// is a reported error, never an out-of-bounds index.
func (n *Network) Forward(s *data.Sample) error {
	sensorLayer := n.layers[n.sensor]
	if len(s.Features) != len(sensorLayer) {
		return errors.Errorf("net: sample has %d features, sensor layer has %d nodes",
			len(s.Features), len(sensorLayer))
	}

	for i := range sensorLayer {
		sensorLayer[i].output = s.Features[i]
	}

	for l := 1; l < len(n.layers); l++ {
		// Snapshot the previous layer before writing this one, so the
		// view being read never aliases the view being written.
		prev := n.layers[l-1]
		snap := n.snap[:len(prev)]
		for i := range prev {
			snap[i] = prev[i].output
		}

		layer := n.layers[l]
		for j := range layer {
			node := &layer[j]
			copy(node.linkVals, snap)
			sum := node.bias
			for k, w := range node.linkWeights {
				sum += w * snap[k]
			}
			node.output = n.act.Activate(sum)
		}
	}
	return nil
}
