package main

import (
	"fmt"
	"os"

	"github.com/teaplant/darjnet/darjnet"
)

func main() {
	fmt.Println("=== XOR Classification Example ===")

	// XOR cannot be solved by a single-layer perceptron but can be solved
	// with one hidden layer. One answer node per category: true, false.
	network := darjnet.New(2, 3, 2, 1, darjnet.Sigmoid)
	network.Summary()

	samples := []darjnet.Sample{
		{Features: []float64{0, 0}, Label: darjnet.Bool(false)},
		{Features: []float64{0, 1}, Label: darjnet.Bool(true)},
		{Features: []float64{1, 0}, Label: darjnet.Bool(true)},
		{Features: []float64{1, 1}, Label: darjnet.Bool(false)},
	}
	categories := []darjnet.Label{darjnet.Bool(true), darjnet.Bool(false)}

	trainer := darjnet.Classifier{
		LearningRate: 1.5,
		MaxCycles:    5000,
		Callbacks:    []darjnet.Callback{darjnet.Logger{Interval: 500}},
	}
	result, err := trainer.Learn(network, samples, categories, "xor")
	if err != nil {
		fmt.Printf("Training failed (%s): %v\n", darjnet.KindOf(err), err)
		os.Exit(1)
	}
	fmt.Printf("\nTrained: %.1f%% correct, mse %.6f\n", result.ErrPercent, result.MSE)
	fmt.Printf("Model saved to %s\n", result.ModelPath)

	// Load the model back and verify it reproduces the trained outputs.
	loaded, err := darjnet.ReadModel(result.ModelPath)
	if err != nil {
		fmt.Printf("Loading failed (%s): %v\n", darjnet.KindOf(err), err)
		os.Exit(1)
	}

	fmt.Println("\nVerifying loaded network:")
	for i := range samples {
		if err := loaded.Forward(&samples[i]); err != nil {
			fmt.Printf("Forward failed: %v\n", err)
			os.Exit(1)
		}
		out := loaded.Outputs()
		fmt.Printf("Input: %v, true-node: %.4f, false-node: %.4f, target: %s\n",
			samples[i].Features, out[0], out[1], samples[i].Label)
	}
}
