package interpolate

import (
	"fmt"
	"math"
)

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 returns just start.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// Finds the index of the first breakpoint above x and the fraction
// of the way there from the breakpoint below
func findIndexAndFrac(xs []float64, x float64) (int, float64) {
	idx := len(xs) - 1
	frac := 0.0

	for i, v := range xs {
		if v > x {
			idx = i
			break
		}
	}

	if idx > 0 {
		delta := xs[idx] - xs[idx-1]
		frac = (x - xs[idx-1]) / delta
	}

	return idx, frac
}

// Piecewise evaluates a piecewise linear function over ascending
// breakpoints xs. Each breakpoint carries two values: left is the value
// approached from below, right the value used from the breakpoint
// upward. Between breakpoints the result blends the lower breakpoint's
// right value into the upper breakpoint's left value. x below xs[0]
// yields right[0], x at or above the last breakpoint yields the last
// left value. NaN yields right[0].
func Piecewise(xs, left, right []float64, x float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("xs is empty")
	}
	if len(left) != len(xs) || len(right) != len(xs) {
		return 0, fmt.Errorf("left and right must match xs in length")
	}
	if math.IsNaN(x) || x <= xs[0] {
		return right[0], nil
	}
	if x >= xs[len(xs)-1] {
		return left[len(xs)-1], nil
	}
	idx, frac := findIndexAndFrac(xs, x)
	return Lerp(right[idx-1], left[idx], frac), nil
}
