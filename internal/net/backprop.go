package net

// backpropagate runs one supervised backward pass: answer-layer error
// signals come from the difference between each answer node's cached
// output and its supervised target.
func (n *Network) backpropagate(rate float64) {
	answer := n.layers[n.answer]
	for j := range answer {
		node := &answer[j]
		node.errSig = (node.output - node.expected) * n.act.Derivative(node.output)
	}
	n.propagateHidden()
	n.adjustAll(rate)
}

// backpropagateLoss runs one adversarial backward pass: every answer node
// receives the distinguisher's epoch mean-squared-error as its loss term.
// This is how the generator gets a gradient signal without an explicit
// discriminator-to-generator weight chain.
func (n *Network) backpropagateLoss(rate, mse float64) {
	answer := n.layers[n.answer]
	for j := range answer {
		node := &answer[j]
		node.errSig = mse * n.act.Derivative(node.output)
	}
	n.propagateHidden()
	n.adjustAll(rate)
}

// propagateHidden computes hidden-layer error signals backward from the
// layer below the answer layer. Each node's signal is the weighted sum of
// the next layer's signals through the links feeding off it, times the
// activation derivative at the node's cached output.
func (n *Network) propagateHidden() {
	for l := n.answer - 1; l > n.sensor; l-- {
		next := n.layers[l+1]
		layer := n.layers[l]
		for j := range layer {
			node := &layer[j]
			sum := 0.0
			for m := range next {
				sum += next[m].errSig * next[m].linkWeights[j]
			}
			node.errSig = sum * n.act.Derivative(node.output)
		}
	}
}

// adjustAll applies the weight updates for every non-sensor node. It runs
// only after propagateHidden so that no error signal is overwritten before
// the layer below it has consumed it.
func (n *Network) adjustAll(rate float64) {
	for l := n.sensor + 1; l <= n.answer; l++ {
		layer := n.layers[l]
		for j := range layer {
			layer[j].adjustWeights(rate)
		}
	}
}
