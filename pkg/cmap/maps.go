package cmap

import (
	"fmt"
	"sort"
)

// Grayscale runs linearly from black to white.
var Grayscale = &Colormap{
	Name:  "grayscale",
	Red:   []Segment{{0, 0, 0}, {1, 1, 1}},
	Green: []Segment{{0, 0, 0}, {1, 1, 1}},
	Blue:  []Segment{{0, 0, 0}, {1, 1, 1}},
}

// Jet is the classic blue-cyan-yellow-red rainbow.
var Jet = &Colormap{
	Name: "jet",
	Red: []Segment{
		{0, 0, 0}, {0.35, 0, 0}, {0.66, 1, 1}, {0.89, 1, 1}, {1, 0.5, 0.5},
	},
	Green: []Segment{
		{0, 0, 0}, {0.125, 0, 0}, {0.375, 1, 1}, {0.64, 1, 1}, {0.91, 0, 0}, {1, 0, 0},
	},
	Blue: []Segment{
		{0, 0.5, 0.5}, {0.11, 1, 1}, {0.34, 1, 1}, {0.65, 0, 0}, {1, 0, 0},
	},
}

// TrafficLight is the green to yellow to red gauge ramp, with yellow
// sitting at 0.6 rather than halfway.
var TrafficLight = &Colormap{
	Name:  "trafficlight",
	Red:   []Segment{{0, 0, 0}, {0.6, 1, 1}, {1, 1, 1}},
	Green: []Segment{{0, 1, 1}, {0.6, 1, 1}, {1, 0, 0}},
	Blue:  []Segment{{0, 0, 0}, {1, 0, 0}},
}

// ColdHot is a diverging cyan-blue-gray-red-yellow map.
var ColdHot = &Colormap{
	Name: "coldhot",
	Red: []Segment{
		{0, 0, 0}, {0.25, 0, 0}, {0.5, 0.5, 0.5}, {0.75, 1, 1}, {1, 1, 1},
	},
	Green: []Segment{
		{0, 1, 1}, {0.25, 0, 0}, {0.5, 0.5, 0.5}, {0.75, 0, 0}, {1, 1, 1},
	},
	Blue: []Segment{
		{0, 1, 1}, {0.25, 1, 1}, {0.5, 0.5, 0.5}, {0.75, 0, 0}, {1, 0, 0},
	},
}

// Spectrum sweeps green, cyan, blue, magenta, red, yellow to white.
var Spectrum = &Colormap{
	Name: "spectrum",
	Red: []Segment{
		{0, 0, 0}, {0.22, 0, 0}, {0.37, 0, 0}, {0.49, 0.9, 0.9},
		{0.68, 0.9, 0.9}, {0.8, 0.9, 0.9}, {1, 0.95, 0.95},
	},
	Green: []Segment{
		{0, 0.75, 0.75}, {0.22, 0.9, 0.9}, {0.37, 0, 0}, {0.49, 0, 0},
		{0.68, 0, 0}, {0.8, 0.9, 0.9}, {1, 0.95, 0.95},
	},
	Blue: []Segment{
		{0, 0, 0}, {0.22, 0.9, 0.9}, {0.37, 0.85, 0.85}, {0.49, 0.85, 0.85},
		{0.68, 0, 0}, {0.8, 0, 0}, {1, 0.95, 0.95},
	},
}

var builtin = map[string]*Colormap{
	Grayscale.Name:    Grayscale,
	Jet.Name:          Jet,
	TrafficLight.Name: TrafficLight,
	ColdHot.Name:      ColdHot,
	Spectrum.Name:     Spectrum,
}

// Get returns the built-in colormap with the given name.
func Get(name string) (*Colormap, error) {
	cm, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	return cm, nil
}

// Names returns the built-in colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
