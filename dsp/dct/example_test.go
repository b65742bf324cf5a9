package dct_test

import (
	"fmt"

	"github.com/miguelangelcasanova/edgedsp/dsp/dct"
)

func ExampleTransform() {
	// The unscaled DCT-II of a unit impulse is a sampled half-period cosine.
	vector := []float64{1, 0, 0, 0, 0, 0, 0, 0}

	if err := dct.Transform(vector); err != nil {
		panic(err)
	}

	for _, c := range vector {
		fmt.Printf("%.4f ", c)
	}
	fmt.Println()

	// Output:
	// 1.0000 0.9808 0.9239 0.8315 0.7071 0.5556 0.3827 0.1951
}

func ExampleInverseTransform() {
	vector := []float64{1, 2, 3, 4}

	// Forward and inverse are unscaled; Normalize applies the 2/len factor
	// that completes the round trip.
	if err := dct.Transform(vector); err != nil {
		panic(err)
	}
	if err := dct.InverseTransform(vector); err != nil {
		panic(err)
	}
	dct.Normalize(vector)

	for _, v := range vector {
		fmt.Printf("%.4f ", v)
	}
	fmt.Println()

	// Output:
	// 1.0000 2.0000 3.0000 4.0000
}
