package colors

import (
	"fmt"
	"hash/crc32"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ToRGBA converts r, g, b channel values in [0, 1] to an opaque RGBA.
// Out of range values are clamped.
func ToRGBA(r, g, b float64) color.RGBA {
	return color.RGBA{toByte(r), toByte(g), toByte(b), 255}
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// FromRGBA converts an RGBA to r, g, b channel values in [0, 1].
func FromRGBA(c color.RGBA) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ParseHex parses a "#rrggbb" or "#rgb" string to channel values in [0, 1].
func ParseHex(s string) (r, g, b float64, err error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return c.R, c.G, c.B, nil
}

// Hex formats an RGBA as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MixHCL blends a and b in HCL space, which keeps perceived lightness
// changing evenly across the blend. t=0 returns a, t=1 returns b.
func MixHCL(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	m := ca.BlendHcl(cb, t).Clamped()
	return ToRGBA(m.R, m.G, m.B)
}

// HashColor derives a stable, arbitrary color from a name. Used to tell
// unnamed series apart without maintaining a color table.
func HashColor(name string) color.RGBA {
	hash := crc32.ChecksumIEEE([]byte(name))
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}
