package cmap

import (
	"fmt"

	"github.com/roffe/cmap/pkg/interpolate"
)

// RGBFunc rewrites one RGB triple. Results are clamped to [0, 1].
type RGBFunc func(r, g, b float64) (float64, float64, float64)

// XFunc rewrites one breakpoint position.
type XFunc func(x float64) float64

// limitsAt returns the left and right RGB limits at x. They differ only
// where a channel has a discontinuity at x.
func (cm *Colormap) limitsAt(x float64) (left, right [3]float64) {
	for i, segs := range [][]Segment{cm.Red, cm.Green, cm.Blue} {
		l := evalChannel(segs, x)
		r := l
		for _, s := range segs {
			if s.X == x {
				l, r = s.Y0, s.Y1
				break
			}
		}
		if x == segs[0].X {
			l = segs[0].Y1
		}
		if x == segs[len(segs)-1].X {
			r = segs[len(segs)-1].Y0
		}
		left[i], right[i] = l, r
	}
	return left, right
}

// Transform applies fn to the RGB values of the colormap and returns
// the result. The new colormap has breakpoints at the union of the
// original channels' breakpoints; at each one the left and right color
// limits pass through fn independently, so channel discontinuities
// survive. The receiver is unchanged.
func (cm *Colormap) Transform(fn RGBFunc) *Colormap {
	steps := cm.breakpoints()
	out := &Colormap{
		Name:  cm.Name + "_mod",
		Red:   make([]Segment, len(steps)),
		Green: make([]Segment, len(steps)),
		Blue:  make([]Segment, len(steps)),
	}
	for i, x := range steps {
		l, r := cm.limitsAt(x)
		lr, lg, lb := fn(l[0], l[1], l[2])
		rr, rg, rb := fn(r[0], r[1], r[2])
		out.Red[i] = Segment{x, clamp01(lr), clamp01(rr)}
		out.Green[i] = Segment{x, clamp01(lg), clamp01(rg)}
		out.Blue[i] = Segment{x, clamp01(lb), clamp01(rb)}
	}
	return out
}

func clamp01(v float64) float64 {
	return interpolate.Clamp(v, 0, 1)
}

// RemapDomain applies fn to every breakpoint position of every channel
// and returns the result. The remapped positions must stay strictly
// ascending and still span exactly [0, 1]; anything else is an error.
// The receiver is unchanged.
func (cm *Colormap) RemapDomain(fn XFunc) (*Colormap, error) {
	remap := func(segs []Segment) []Segment {
		out := make([]Segment, len(segs))
		for i, s := range segs {
			out[i] = Segment{X: fn(s.X), Y0: s.Y0, Y1: s.Y1}
		}
		return out
	}
	nc, err := New(cm.Name+"_xmod", remap(cm.Red), remap(cm.Green), remap(cm.Blue))
	if err != nil {
		return nil, fmt.Errorf("remap domain: %w", err)
	}
	return nc, nil
}

// Discretize reduces the colormap to n flat color bands. The bands are
// the colormap sampled at n evenly spaced points; band boundaries sit
// at multiples of 1/n. The receiver is unchanged.
func (cm *Colormap) Discretize(n int) (*Colormap, error) {
	if n < 1 {
		return nil, fmt.Errorf("discretize %q: need at least 1 band, got %d", cm.Name, n)
	}
	type rgb [3]float64
	bands := make([]rgb, n)
	for i, x := range interpolate.Linspace(0, 1, n) {
		bands[i][0], bands[i][1], bands[i][2] = cm.FloatAt(x)
	}
	edges := interpolate.Linspace(0, 1, n+1)

	out := &Colormap{
		Name:  fmt.Sprintf("%s_%d", cm.Name, n),
		Red:   make([]Segment, n+1),
		Green: make([]Segment, n+1),
		Blue:  make([]Segment, n+1),
	}
	for i, x := range edges {
		lo := bands[max(i-1, 0)]
		hi := bands[min(i, n-1)]
		out.Red[i] = Segment{x, lo[0], hi[0]}
		out.Green[i] = Segment{x, lo[1], hi[1]}
		out.Blue[i] = Segment{x, lo[2], hi[2]}
	}
	return out, nil
}
