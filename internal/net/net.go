// Package net implements the feed-forward network engine: construction,
// forward propagation, backpropagation with fixed-rate gradient descent,
// supervised and adversarial trainers, inference and the .darj model codec.
//
// The training arithmetic is hand-written nested loops over per-node state
// rather than calls into an external matrix library; the network is small
// and the per-node layout keeps the codec and the error-signal bookkeeping
// straightforward.
package net

import (
	"fmt"
	"math/rand"

	"github.com/teaplant/darjnet/internal/activations"
)

// Network is an ordered collection of node layers: one sensor layer, zero
// or more hidden layers, and one answer layer. A Network is exclusively
// owned by the caller driving its training or inference; nothing in this
// package shares one across goroutines.
type Network struct {
	layers     [][]Node
	sensor     int
	answer     int
	parameters int
	act        activations.Activation

	// Snapshot of the previous layer's outputs, reused across forward
	// passes so the layer being read never aliases the layer being written.
	snap []float64
}

// New creates a network with the given topology: inputs sensor nodes,
// hiddenLayers layers of hidden nodes each, and outputs answer nodes.
// Every weight and bias is drawn uniformly from [-0.5, 0.5). Zero hidden
// layers is legal and connects the sensor layer directly to the answer
// layer. A nil rng uses the package-default non-deterministic source.
// Construction cannot fail.
func New(inputs, hidden, outputs, hiddenLayers int, act activations.Activation, rng *rand.Rand) *Network {
	n := &Network{
		layers: make([][]Node, 0, hiddenLayers+2),
		sensor: 0,
		answer: hiddenLayers + 1,
		act:    act,
	}

	sensorLayer := make([]Node, inputs)
	for i := range sensorLayer {
		sensorLayer[i] = newNode(0, rng)
	}
	n.layers = append(n.layers, sensorLayer)

	for l := 0; l < hiddenLayers; l++ {
		links := len(n.layers[l])
		hiddenLayer := make([]Node, hidden)
		for i := range hiddenLayer {
			hiddenLayer[i] = newNode(links, rng)
		}
		n.layers = append(n.layers, hiddenLayer)
	}

	links := len(n.layers[len(n.layers)-1])
	answerLayer := make([]Node, outputs)
	for i := range answerLayer {
		answerLayer[i] = newNode(links, rng)
	}
	n.layers = append(n.layers, answerLayer)

	n.parameters = countParameters(n.layers)
	n.snap = make([]float64, maxWidth(n.layers))
	return n
}

// Parameters returns the number of trainable parameters: every node
// contributes its link weights plus one bias.
func (n *Network) Parameters() int { return n.parameters }

// Activation returns the network's activation function.
func (n *Network) Activation() activations.Activation { return n.act }

// LayerWidths returns the node count of each layer, sensor first.
func (n *Network) LayerWidths() []int {
	widths := make([]int, len(n.layers))
	for i, layer := range n.layers {
		widths[i] = len(layer)
	}
	return widths
}

// Outputs returns a copy of the answer layer's cached outputs, as left by
// the last forward pass.
func (n *Network) Outputs() []float64 {
	answer := n.layers[n.answer]
	out := make([]float64, len(answer))
	for i := range answer {
		out[i] = answer[i].output
	}
	return out
}

// brightest returns the index of the answer node with the largest cached
// output.
func (n *Network) brightest() int {
	answer := n.layers[n.answer]
	best := 0
	for i := range answer {
		if answer[i].output > answer[best].output {
			best = i
		}
	}
	return best
}

// Summary prints a summary of the network architecture.
func (n *Network) Summary() {
	fmt.Println("Model: feed-forward")
	fmt.Println("_________________________________________________________________")
	fmt.Printf("%-25s %-20s %-10s\n", "Layer", "Width", "Param #")
	fmt.Println("=================================================================")
	for i, layer := range n.layers {
		name := fmt.Sprintf("hidden_%d", i)
		switch i {
		case n.sensor:
			name = "sensor"
		case n.answer:
			name = "answer"
		}
		params := 0
		for j := range layer {
			params += layer[j].links + 1
		}
		fmt.Printf("%-25s %-20d %-10d\n", name, len(layer), params)
	}
	fmt.Println("=================================================================")
	fmt.Printf("Total params: %d\n", n.parameters)
	fmt.Printf("Activation: %s\n", n.act)
	fmt.Println("_________________________________________________________________")
}

func countParameters(layers [][]Node) int {
	params := 0
	for _, layer := range layers {
		for j := range layer {
			params += layer[j].links + 1
		}
	}
	return params
}

func maxWidth(layers [][]Node) int {
	width := 0
	for _, layer := range layers {
		if len(layer) > width {
			width = len(layer)
		}
	}
	return width
}
