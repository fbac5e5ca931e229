// Package render rasterizes colormaps into colorbar images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/roffe/cmap/pkg/cmap"
)

const labelMargin = 16

type Config struct {
	Width  int // default 512
	Height int // default 48, bar only
	Ticks  int // tick labels under the bar, 0 for none
}

func (cfg *Config) defaults() {
	if cfg.Width == 0 {
		cfg.Width = 512
	}
	if cfg.Width < 2 {
		cfg.Width = 2
	}
	if cfg.Height < 1 {
		cfg.Height = 48
	}
}

// Colorbar renders cm as a horizontal bar, one uniform column per x
// sample. With cfg.Ticks > 0 a label strip with tick values is added
// under the bar.
func Colorbar(cm *cmap.Colormap, cfg Config) *image.RGBA {
	cfg.defaults()

	height := cfg.Height
	if cfg.Ticks > 0 {
		height += labelMargin
	}
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	for x := 0; x < cfg.Width; x++ {
		col := cm.At(float64(x) / float64(cfg.Width-1))
		draw.Draw(img, image.Rect(x, 0, x+1, cfg.Height), &image.Uniform{col}, image.Point{}, draw.Src)
	}

	if cfg.Ticks > 0 {
		drawTicks(img, cfg)
	}
	return img
}

func drawTicks(img *image.RGBA, cfg Config) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i := 0; i <= cfg.Ticks; i++ {
		frac := float64(i) / float64(cfg.Ticks)
		label := strconv.FormatFloat(frac, 'f', 2, 64)
		x := int(frac * float64(cfg.Width-1))
		w := d.MeasureString(label).Ceil()
		if x+w > cfg.Width {
			x = cfg.Width - w
		}
		d.Dot = fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(cfg.Height + labelMargin - 4),
		}
		d.DrawString(label)
	}
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// ExportAll renders every colormap to <dir>/<name>.png concurrently and
// returns the first error encountered.
func ExportAll(dir string, cms []*cmap.Colormap, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export dir: %w", err)
	}
	errg := new(errgroup.Group)
	for _, cm := range cms {
		cm := cm
		errg.Go(func() error {
			return SavePNG(filepath.Join(dir, cm.Name+".png"), Colorbar(cm, cfg))
		})
	}
	return errg.Wait()
}
