package cmap

import "image/color"

// Colorblind-safe diverging maps, each a low → neutral → high ramp.
var (
	// Universal runs blue to gray to orange.
	Universal = mustColors("universal",
		color.RGBA{33, 102, 172, 255},
		color.RGBA{247, 247, 247, 255},
		color.RGBA{255, 165, 0, 255},
	)

	// Protanopia runs blue to white to brown.
	Protanopia = mustColors("protanopia",
		color.RGBA{5, 113, 176, 255},
		color.RGBA{247, 247, 247, 255},
		color.RGBA{150, 75, 0, 255},
	)

	// Tritanopia runs teal to gray to red.
	Tritanopia = mustColors("tritanopia",
		color.RGBA{0, 128, 128, 255},
		color.RGBA{247, 247, 247, 255},
		color.RGBA{215, 48, 39, 255},
	)

	// Deuteranomaly runs blue to beige to brown.
	Deuteranomaly = mustColors("deuteranomaly",
		color.RGBA{0x4A, 0x90, 0xE2, 255},
		color.RGBA{0xF5, 0xE6, 0xB3, 255},
		color.RGBA{0x8B, 0x45, 0x13, 255},
	)
)

func mustColors(name string, cols ...color.RGBA) *Colormap {
	cm, err := FromColors(name, cols...)
	if err != nil {
		panic(err)
	}
	return cm
}

func init() {
	for _, cm := range []*Colormap{Universal, Protanopia, Tritanopia, Deuteranomaly} {
		builtin[cm.Name] = cm
	}
}
