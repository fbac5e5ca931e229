package render_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/roffe/cmap/pkg/cmap"
	"github.com/roffe/cmap/pkg/render"
)

func TestColorbar(t *testing.T) {
	img := render.Colorbar(cmap.Grayscale, render.Config{Width: 10, Height: 5})

	if got := img.Bounds().Dx(); got != 10 {
		t.Fatalf("width = %d, want 10", got)
	}
	if got := img.Bounds().Dy(); got != 5 {
		t.Fatalf("height = %d, want 5", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("left edge = %v, want black", got)
	}
	if got := img.RGBAAt(9, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("right edge = %v, want white", got)
	}
	// columns are uniform
	if top, bottom := img.RGBAAt(4, 0), img.RGBAAt(4, 4); top != bottom {
		t.Errorf("column not uniform: %v vs %v", top, bottom)
	}
}

func TestColorbarTicks(t *testing.T) {
	img := render.Colorbar(cmap.Grayscale, render.Config{Width: 128, Height: 16, Ticks: 4})
	if got := img.Bounds().Dy(); got <= 16 {
		t.Errorf("height = %d, want label strip below the bar", got)
	}
}

func TestColorbarMinWidth(t *testing.T) {
	img := render.Colorbar(cmap.Grayscale, render.Config{Width: 1, Height: 4})
	if got := img.Bounds().Dx(); got != 2 {
		t.Fatalf("width = %d, want floored to 2", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("left edge = %v, want black", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("right edge = %v, want white", got)
	}
}

func TestColorbarDefaults(t *testing.T) {
	img := render.Colorbar(cmap.Jet, render.Config{})
	if got := img.Bounds().Dx(); got != 512 {
		t.Errorf("default width = %d, want 512", got)
	}
	if got := img.Bounds().Dy(); got != 48 {
		t.Errorf("default height = %d, want 48", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")
	img := render.Colorbar(cmap.Grayscale, render.Config{Width: 32, Height: 8})
	if err := render.SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written file failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bars")
	cms := []*cmap.Colormap{cmap.Grayscale, cmap.Jet, cmap.TrafficLight}
	if err := render.ExportAll(dir, cms, render.Config{Width: 16, Height: 4}); err != nil {
		t.Fatalf("ExportAll() failed: %v", err)
	}
	for _, cm := range cms {
		if _, err := os.Stat(filepath.Join(dir, cm.Name+".png")); err != nil {
			t.Errorf("missing export for %s: %v", cm.Name, err)
		}
	}
}
