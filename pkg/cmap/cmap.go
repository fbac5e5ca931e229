// Package cmap implements segmented colormaps and transformations on
// them: arbitrary recoloring, input domain remapping and discretization
// into flat bands.
package cmap

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/roffe/cmap/pkg/colors"
	"github.com/roffe/cmap/pkg/interpolate"
)

// Segment is one breakpoint of a colormap channel. Y0 is the channel
// value approached from below X, Y1 the value used from X upward; they
// differ only at a discontinuity.
type Segment struct {
	X, Y0, Y1 float64
}

// Colormap maps values in [0, 1] to colors by piecewise linear
// interpolation of three channel segment lists.
type Colormap struct {
	Name  string
	Red   []Segment
	Green []Segment
	Blue  []Segment
}

// New validates the segment lists and returns a colormap. Each channel
// needs ascending X from exactly 0 to exactly 1 and all values in [0, 1].
func New(name string, red, green, blue []Segment) (*Colormap, error) {
	cm := &Colormap{Name: name, Red: red, Green: green, Blue: blue}
	for _, ch := range []struct {
		name string
		segs []Segment
	}{{"red", red}, {"green", green}, {"blue", blue}} {
		if err := validateChannel(ch.segs); err != nil {
			return nil, fmt.Errorf("colormap %q channel %s: %w", name, ch.name, err)
		}
	}
	return cm, nil
}

func validateChannel(segs []Segment) error {
	if len(segs) < 2 {
		return fmt.Errorf("need at least 2 segments, got %d", len(segs))
	}
	if segs[0].X != 0 {
		return fmt.Errorf("first breakpoint at %g, must be 0", segs[0].X)
	}
	if segs[len(segs)-1].X != 1 {
		return fmt.Errorf("last breakpoint at %g, must be 1", segs[len(segs)-1].X)
	}
	for i, s := range segs {
		if i > 0 && s.X <= segs[i-1].X {
			return fmt.Errorf("breakpoints not ascending at index %d (%g after %g)", i, s.X, segs[i-1].X)
		}
		if s.Y0 < 0 || s.Y0 > 1 || s.Y1 < 0 || s.Y1 > 1 {
			return fmt.Errorf("value out of [0,1] at breakpoint %g", s.X)
		}
	}
	return nil
}

func splitChannel(segs []Segment) (xs, left, right []float64) {
	xs = make([]float64, len(segs))
	left = make([]float64, len(segs))
	right = make([]float64, len(segs))
	for i, s := range segs {
		xs[i] = s.X
		left[i] = s.Y0
		right[i] = s.Y1
	}
	return xs, left, right
}

func evalChannel(segs []Segment, x float64) float64 {
	xs, left, right := splitChannel(segs)
	v, err := interpolate.Piecewise(xs, left, right, x)
	if err != nil {
		return 0
	}
	return v
}

// FloatAt returns the r, g, b channel values in [0, 1] for x. x is
// clamped to [0, 1] and NaN maps to the low end.
func (cm *Colormap) FloatAt(x float64) (r, g, b float64) {
	return evalChannel(cm.Red, x), evalChannel(cm.Green, x), evalChannel(cm.Blue, x)
}

// At returns the opaque color for x.
func (cm *Colormap) At(x float64) color.RGBA {
	return colors.ToRGBA(cm.FloatAt(x))
}

// Palette samples the colormap at n evenly spaced points and returns
// the resulting lookup table.
func (cm *Colormap) Palette(n int) []color.RGBA {
	out := make([]color.RGBA, 0, n)
	for _, x := range interpolate.Linspace(0, 1, n) {
		out = append(out, cm.At(x))
	}
	return out
}

// Reversed returns the colormap mirrored around x=0.5.
func (cm *Colormap) Reversed() *Colormap {
	rev := func(segs []Segment) []Segment {
		out := make([]Segment, len(segs))
		for i, s := range segs {
			out[len(segs)-1-i] = Segment{X: 1 - s.X, Y0: s.Y1, Y1: s.Y0}
		}
		return out
	}
	return &Colormap{
		Name:  cm.Name + "_r",
		Red:   rev(cm.Red),
		Green: rev(cm.Green),
		Blue:  rev(cm.Blue),
	}
}

// Stop is a color at a position in [0, 1], used to build colormaps from
// color lists.
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// FromStops builds a continuous colormap interpolating through the
// given stops. Stops must be ascending from 0 to 1.
func FromStops(name string, stops []Stop) (*Colormap, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least 2 stops, got %d", name, len(stops))
	}
	var red, green, blue []Segment
	for _, s := range stops {
		r, g, b := colors.FromRGBA(s.Color)
		red = append(red, Segment{s.Pos, r, r})
		green = append(green, Segment{s.Pos, g, g})
		blue = append(blue, Segment{s.Pos, b, b})
	}
	return New(name, red, green, blue)
}

// FromColors builds a continuous colormap with the given colors evenly
// spaced over [0, 1].
func FromColors(name string, cols ...color.RGBA) (*Colormap, error) {
	if len(cols) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least 2 colors, got %d", name, len(cols))
	}
	xs := interpolate.Linspace(0, 1, len(cols))
	stops := make([]Stop, len(cols))
	for i, c := range cols {
		stops[i] = Stop{Pos: xs[i], Color: c}
	}
	return FromStops(name, stops)
}

// FromColorsHCL builds a continuous colormap with the given colors
// evenly spaced over [0, 1], bridged in HCL space: each pair of
// neighbors gets intermediate breakpoints following the perceptual
// blend instead of a straight RGB line.
func FromColorsHCL(name string, cols ...color.RGBA) (*Colormap, error) {
	if len(cols) < 2 {
		return nil, fmt.Errorf("colormap %q: need at least 2 colors, got %d", name, len(cols))
	}
	const substeps = 4
	n := len(cols)
	var stops []Stop
	for i := 0; i < n-1; i++ {
		lo := float64(i) / float64(n-1)
		hi := float64(i+1) / float64(n-1)
		for j := 0; j < substeps; j++ {
			t := float64(j) / substeps
			stops = append(stops, Stop{
				Pos:   lo + t*(hi-lo),
				Color: colors.MixHCL(cols[i], cols[i+1], t),
			})
		}
	}
	stops = append(stops, Stop{Pos: 1, Color: cols[n-1]})
	return FromStops(name, stops)
}

// FromHex builds a continuous colormap from "#rrggbb" strings, evenly
// spaced over [0, 1].
func FromHex(name string, hexes ...string) (*Colormap, error) {
	cols, err := parseHexColors(name, hexes)
	if err != nil {
		return nil, err
	}
	return FromColors(name, cols...)
}

// FromHexHCL is FromHex with the stops bridged in HCL space.
func FromHexHCL(name string, hexes ...string) (*Colormap, error) {
	cols, err := parseHexColors(name, hexes)
	if err != nil {
		return nil, err
	}
	return FromColorsHCL(name, cols...)
}

func parseHexColors(name string, hexes []string) ([]color.RGBA, error) {
	cols := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		r, g, b, err := colors.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %q: %w", name, err)
		}
		cols = append(cols, colors.ToRGBA(r, g, b))
	}
	return cols, nil
}

// breakpoints returns the sorted union of all channels' breakpoint
// positions.
func (cm *Colormap) breakpoints() []float64 {
	seen := make(map[float64]struct{})
	var out []float64
	for _, segs := range [][]Segment{cm.Red, cm.Green, cm.Blue} {
		for _, s := range segs {
			if _, ok := seen[s.X]; !ok {
				seen[s.X] = struct{}{}
				out = append(out, s.X)
			}
		}
	}
	sort.Float64s(out)
	return out
}
