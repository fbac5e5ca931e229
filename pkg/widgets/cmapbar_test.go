package widgets

import (
	"image/color"
	"testing"

	"github.com/roffe/cmap/pkg/colors"
)

func TestTitleColor(t *testing.T) {
	if got := titleColor(""); got != (color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}) {
		t.Errorf("titleColor(\"\") = %v, want plain white", got)
	}
	if got, want := titleColor("jet"), colors.HashColor("jet"); got != want {
		t.Errorf("titleColor(jet) = %v, want %v", got, want)
	}
	if titleColor("jet") == titleColor("spectrum") {
		t.Error("titleColor() not distinct for different names")
	}
}
