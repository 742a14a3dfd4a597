package net

import (
	"math/rand"

	"github.com/teaplant/darjnet/internal/label"
)

// Node is a single neuron: incoming link weights, the cached values those
// links carried on the last forward pass, a bias weight, and the error
// signal left behind by the last backward pass. Answer-layer nodes
// additionally carry a category and a supervised target.
//
// Invariant: len(linkWeights) == len(linkVals) == links.
type Node struct {
	linkWeights []float64
	linkVals    []float64
	links       int
	bias        float64
	output      float64
	errSig      float64
	expected    float64
	category    label.Value
}

// newNode creates a node with the given incoming link count and every
// weight and bias drawn uniformly from [-0.5, 0.5).
func newNode(links int, rng *rand.Rand) Node {
	n := Node{
		linkWeights: make([]float64, links),
		linkVals:    make([]float64, links),
		links:       links,
		bias:        randWeight(rng),
	}
	for i := range n.linkWeights {
		n.linkWeights[i] = randWeight(rng)
	}
	return n
}

// parsedNode creates a node from weights read back by the codec.
func parsedNode(weights []float64, bias float64) Node {
	return Node{
		linkWeights: weights,
		linkVals:    make([]float64, len(weights)),
		links:       len(weights),
		bias:        bias,
	}
}

// adjustWeights applies one fixed-rate gradient step using the node's
// error signal and the link values cached by the last forward pass.
// Callers must not invoke it before every error signal in the network
// has been computed.
func (nd *Node) adjustWeights(rate float64) {
	for k := range nd.linkWeights {
		nd.linkWeights[k] -= rate * nd.errSig * nd.linkVals[k]
	}
	nd.bias -= rate * nd.errSig
}

func randWeight(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64() - 0.5
	}
	return rand.Float64() - 0.5
}
