package interpolate_test

import (
	"math"
	"testing"

	"github.com/roffe/cmap/pkg/interpolate"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		name        string
		start, stop float64
		n           int
		want        []float64
	}{
		{name: "empty", n: 0, want: nil},
		{name: "single", start: 0.5, stop: 1, n: 1, want: []float64{0.5}},
		{name: "unit", start: 0, stop: 1, n: 5, want: []float64{0, 0.25, 0.5, 0.75, 1}},
		{name: "reverse", start: 1, stop: 0, n: 3, want: []float64{1, 0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolate.Linspace(tt.start, tt.stop, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Linspace() returned %d values, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !almostEqual(got[i], tt.want[i]) {
					t.Errorf("Linspace()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := interpolate.Lerp(0, 10, 0.25); !almostEqual(got, 2.5) {
		t.Errorf("Lerp(0, 10, 0.25) = %v, want 2.5", got)
	}
	if got := interpolate.Lerp(5, 5, 0.7); !almostEqual(got, 5) {
		t.Errorf("Lerp(5, 5, 0.7) = %v, want 5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-0.5, 0, 1, 0},
		{1.5, 0, 1, 1},
		{0.3, 0, 1, 0.3},
	}
	for _, tt := range tests {
		if got := interpolate.Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestPiecewise(t *testing.T) {
	// ramp with a jump from 0.2 to 0.8 at x=0.5
	xs := []float64{0, 0.5, 1}
	left := []float64{0, 0.2, 1}
	right := []float64{0, 0.8, 1}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "start", x: 0, want: 0},
		{name: "below start", x: -1, want: 0},
		{name: "mid lower half", x: 0.25, want: 0.1},
		{name: "at jump takes right value", x: 0.5, want: 0.8},
		{name: "mid upper half", x: 0.75, want: 0.9},
		{name: "end takes left value", x: 1, want: 1},
		{name: "above end", x: 2, want: 1},
		{name: "NaN maps to low end", x: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interpolate.Piecewise(xs, left, right, tt.x)
			if err != nil {
				t.Fatalf("Piecewise() failed: %v", err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Piecewise(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestPiecewiseErrors(t *testing.T) {
	if _, err := interpolate.Piecewise(nil, nil, nil, 0.5); err == nil {
		t.Error("Piecewise() with empty breakpoints succeeded unexpectedly")
	}
	if _, err := interpolate.Piecewise([]float64{0, 1}, []float64{0}, []float64{0, 1}, 0.5); err == nil {
		t.Error("Piecewise() with mismatched lengths succeeded unexpectedly")
	}
}
