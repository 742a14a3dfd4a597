// Package metrics provides the training-loop accumulators: a per-epoch
// error accumulator and a rolling window over epoch losses.
package metrics

import "gonum.org/v1/gonum/stat"

// Epoch accumulates squared-error terms and per-sample classification
// outcomes over one training epoch.
type Epoch struct {
	sumSq   float64
	terms   int
	correct int
	samples int
}

// Observe adds one output-vs-expected difference to the accumulator.
func (e *Epoch) Observe(diff float64) {
	e.sumSq += diff * diff
	e.terms++
}

// Sample records whether one sample was classified correctly.
func (e *Epoch) Sample(correct bool) {
	if correct {
		e.correct++
	}
	e.samples++
}

// MSE returns the mean of the observed squared errors.
func (e *Epoch) MSE() float64 {
	if e.terms == 0 {
		return 0
	}
	return e.sumSq / float64(e.terms)
}

// Percent returns the percentage of correctly classified samples.
func (e *Epoch) Percent() float64 {
	if e.samples == 0 {
		return 0
	}
	return 100 * float64(e.correct) / float64(e.samples)
}

// Rolling is a fixed-size window over a stream of values. Until the window
// fills, statistics cover the values pushed so far.
type Rolling struct {
	vals []float64
	size int
	next int
	full bool
}

// NewRolling returns a window holding the last size values.
func NewRolling(size int) *Rolling {
	return &Rolling{vals: make([]float64, 0, size), size: size}
}

// Push adds a value, evicting the oldest once the window is full.
func (r *Rolling) Push(v float64) {
	if len(r.vals) < r.size {
		r.vals = append(r.vals, v)
		r.full = len(r.vals) == r.size
		return
	}
	r.vals[r.next] = v
	r.next = (r.next + 1) % r.size
}

// Full reports whether the window holds size values.
func (r *Rolling) Full() bool { return r.full }

// Mean returns the mean of the windowed values.
func (r *Rolling) Mean() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	return stat.Mean(r.vals, nil)
}

// StdDev returns the sample standard deviation of the windowed values.
func (r *Rolling) StdDev() float64 {
	if len(r.vals) < 2 {
		return 0
	}
	return stat.StdDev(r.vals, nil)
}
