package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/teaplant/darjnet/darjnet"
)

// patternRows fabricates training rows that follow a simple pattern: each
// row is a rising ramp with a small amount of noise, scaled into [0, 1].
func patternRows(n, width int) []darjnet.Sample {
	rows := make([]darjnet.Sample, n)
	for i := range rows {
		features := make([]float64, width)
		for j := range features {
			base := float64(j+1) / float64(width+1)
			features[j] = base + (rand.Float64()-0.5)*0.1
		}
		rows[i] = darjnet.Sample{Features: features}
	}
	return rows
}

func main() {
	fmt.Println("=== Adversarial Generation Example ===")

	const width = 8
	samples := patternRows(200, width)

	// The generator maps a row to a fabricated row of the same width.
	generator := darjnet.New(width, 10, width, 1, darjnet.Sigmoid)
	generator.Summary()

	trainer := darjnet.Generative{
		LearningRate: 0.5,
		MaxCycles:    50,
		Distinguisher: darjnet.Distinguisher{
			LearningRate: 0.5,
			HiddenNodes:  10,
			HiddenLayers: 1,
			Activation:   darjnet.Sigmoid,
		},
		Callbacks: []darjnet.Callback{darjnet.Logger{Interval: 5}},
		Logger:    slog.Default(),
	}

	path, err := trainer.Learn(generator, samples, "gen")
	if err != nil {
		fmt.Printf("Training failed (%s): %v\n", darjnet.KindOf(err), err)
		os.Exit(1)
	}
	fmt.Printf("\nGenerator saved to %s\n", path)

	// Load the model back and sample a few generated rows.
	loaded, err := darjnet.ReadModel(path)
	if err != nil {
		fmt.Printf("Loading failed (%s): %v\n", darjnet.KindOf(err), err)
		os.Exit(1)
	}
	generated, err := loaded.Test(patternRows(4, width), nil)
	if err != nil {
		fmt.Printf("Inference failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nGenerated rows:")
	for _, row := range generated {
		for _, v := range row.Features {
			fmt.Printf("%.3f ", v)
		}
		fmt.Println()
	}
}
