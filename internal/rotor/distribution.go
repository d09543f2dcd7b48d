package rotor

import "math"

// Linspace spreads n values linearly over [start, end], endpoints
// included, and returns the station spacing. A single station sits at
// the midpoint with the full span as its width.
func Linspace(start, end float64, n int) (values []float64, delta float64) {
	if n == 1 {
		return []float64{0.5 * (start + end)}, end - start
	}
	values = make([]float64, n)
	delta = (end - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*delta
	}
	values[n-1] = end
	return values, delta
}

// Spacing generates n station positions over [start, end] for a
// Builder. Positions must come back strictly increasing.
type Spacing func(start, end float64, n int) []float64

// Uniform spaces stations evenly from hub to tip.
func Uniform(start, end float64, n int) []float64 {
	values, _ := Linspace(start, end, n)
	return values
}

// Cosine clusters stations toward hub and tip, where the geometry and
// loading gradients are steepest.
func Cosine(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{0.5 * (start + end)}
	}
	values := make([]float64, n)
	for i := range values {
		t := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(n-1)))
		values[i] = start + (end-start)*t
	}
	values[n-1] = end
	return values
}
