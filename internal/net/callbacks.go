package net

import "fmt"

// Callback defines the interface for training callbacks. Trainers fire
// OnTrainBegin once, OnEpochEnd after every epoch with that epoch's
// mean-squared-error, and OnTrainEnd once training finishes.
type Callback interface {
	OnTrainBegin(n *Network)
	OnEpochEnd(epoch int, mse float64, n *Network)
	OnTrainEnd(n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                       {}
func (c BaseCallback) OnEpochEnd(epoch int, mse float64, n *Network) {}
func (c BaseCallback) OnTrainEnd(n *Network)                         {}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, mse float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: mse = %.6f\n", epoch, mse)
	}
}
