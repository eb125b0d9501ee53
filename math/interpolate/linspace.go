package interpolate

import (
	"fmt"
)

// Linspace returns n evenly spaced values in [start, end]. Both endpoints are
// included exactly. n must be at least 2.
func Linspace(start, end float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("Linspace requires n >= 2, but n = %d.", n))
	}

	xs := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = end
	return xs
}
