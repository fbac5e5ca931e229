package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/roffe/cmap/pkg/cmap"
	"github.com/roffe/cmap/pkg/colors"
)

// CmapBar shows a colormap as a horizontal gradient strip with its name
// overlaid.
type CmapBar struct {
	face      *canvas.Rectangle
	strip     *canvas.Raster
	titleText *canvas.Text

	cfg *CmapBarConfig

	cm *cmap.Colormap

	canvas fyne.CanvasObject
}

type CmapBarConfig struct {
	Colormap *cmap.Colormap
	Title    string // default Colormap.Name
	Minsize  fyne.Size
}

func NewCmapBar(cfg *CmapBarConfig) *CmapBar {
	s := &CmapBar{
		cfg: cfg,
		cm:  cfg.Colormap,
	}
	if s.cfg.Title == "" && s.cm != nil {
		s.cfg.Title = s.cm.Name
	}
	if s.cfg.Minsize.IsZero() {
		s.cfg.Minsize = fyne.NewSize(256, 48)
	}
	s.canvas = s.render()
	return s
}

func (s *CmapBar) render() *fyne.Container {
	s.face = &canvas.Rectangle{StrokeColor: color.RGBA{0x80, 0x80, 0x80, 0x80}, FillColor: color.RGBA{0x00, 0x00, 0x00, 0x00}, StrokeWidth: 2}
	s.strip = canvas.NewRasterWithPixels(s.pixel)

	s.titleText = &canvas.Text{Text: s.cfg.Title, Color: titleColor(s.cfg.Title), TextSize: 14}
	s.titleText.TextStyle.Monospace = true
	s.titleText.Alignment = fyne.TextAlignCenter

	bar := container.NewWithoutLayout(s.strip, s.face, s.titleText)
	bar.Layout = s
	return bar
}

func (s *CmapBar) pixel(x, _, w, _ int) color.Color {
	if s.cm == nil || w < 2 {
		return color.Black
	}
	return s.cm.At(float64(x) / float64(w-1))
}

func (s *CmapBar) Layout(_ []fyne.CanvasObject, space fyne.Size) {
	s.face.Resize(space)
	s.strip.Resize(space)
	s.titleText.Move(fyne.NewPos(space.Width/2, space.Height-20))
}

func (s *CmapBar) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return s.cfg.Minsize
}

func (s *CmapBar) Content() fyne.CanvasObject {
	return s.canvas
}

// SetColormap swaps the displayed colormap and refreshes the strip.
func (s *CmapBar) SetColormap(cm *cmap.Colormap) {
	s.cm = cm
	if cm != nil {
		s.titleText.Text = cm.Name
		s.titleText.Color = titleColor(cm.Name)
		s.titleText.Refresh()
	}
	s.strip.Refresh()
}

// titleColor gives each named colormap a stable, distinct label color.
// Unnamed colormaps get plain white.
func titleColor(name string) color.RGBA {
	if name == "" {
		return color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	}
	return colors.HashColor(name)
}
