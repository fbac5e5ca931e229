package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"

	"github.com/roffe/cmap/pkg/cmap"
	"github.com/roffe/cmap/pkg/colors"
	"github.com/roffe/cmap/pkg/render"
	"github.com/roffe/cmap/pkg/theme"
	"github.com/roffe/cmap/pkg/widgets"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

type viewer struct {
	w fyne.Window

	base   *cmap.Colormap
	tint   color.RGBA
	nBands int

	original    *widgets.CmapBar
	tinted      *widgets.CmapBar
	remapped    *widgets.CmapBar
	discretized *widgets.CmapBar
}

func main() {
	a := app.NewWithID("com.roffe.cmap")
	a.Settings().SetTheme(&theme.CmapTheme{})

	base, err := cmap.Get("jet")
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{
		w:      a.NewWindow("cmap"),
		base:   base,
		tint:   color.RGBA{255, 200, 160, 255},
		nBands: 8,
	}

	v.original = widgets.NewCmapBar(&widgets.CmapBarConfig{Colormap: v.base})
	v.tinted = widgets.NewCmapBar(&widgets.CmapBarConfig{Colormap: v.tintedMap()})
	v.remapped = widgets.NewCmapBar(&widgets.CmapBarConfig{Colormap: v.remappedMap()})
	v.discretized = widgets.NewCmapBar(&widgets.CmapBarConfig{Colormap: v.discretizedMap()})

	v.w.SetContent(container.NewBorder(
		v.controls(),
		nil, nil, nil,
		container.NewGridWithRows(4,
			v.original.Content(),
			v.tinted.Content(),
			v.remapped.Content(),
			v.discretized.Content(),
		),
	))
	v.w.Resize(fyne.NewSize(640, 480))
	v.w.ShowAndRun()
}

func (v *viewer) controls() fyne.CanvasObject {
	sel := widget.NewSelect(cmap.Names(), func(name string) {
		cm, err := cmap.Get(name)
		if err != nil {
			log.Println(err)
			return
		}
		v.base = cm
		v.refresh()
	})
	sel.SetSelected(v.base.Name)

	bands := widget.NewSlider(2, 32)
	bands.Step = 1
	bands.Value = float64(v.nBands)
	bands.OnChanged = func(val float64) {
		v.nBands = int(val)
		v.refresh()
	}

	tintBtn := widget.NewButton("Tint", v.pickTint)
	exportBtn := widget.NewButton("Export", v.export)
	copyBtn := widget.NewButton("Copy hex", func() {
		var sb strings.Builder
		for i, c := range v.base.Palette(v.nBands) {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(colors.Hex(c))
		}
		v.w.Clipboard().SetContent(sb.String())
	})

	return container.NewVBox(
		container.NewGridWithColumns(4, sel, tintBtn, copyBtn, exportBtn),
		bands,
	)
}

func (v *viewer) tintedMap() *cmap.Colormap {
	tr, tg, tb := colors.FromRGBA(v.tint)
	return v.base.Transform(func(r, g, b float64) (float64, float64, float64) {
		return r * tr, g * tg, b * tb
	})
}

func (v *viewer) remappedMap() *cmap.Colormap {
	cm, err := v.base.RemapDomain(math.Sqrt)
	if err != nil {
		log.Println(err)
		return v.base
	}
	return cm
}

func (v *viewer) discretizedMap() *cmap.Colormap {
	cm, err := v.base.Discretize(v.nBands)
	if err != nil {
		log.Println(err)
		return v.base
	}
	return cm
}

func (v *viewer) refresh() {
	v.original.SetColormap(v.base)
	v.tinted.SetColormap(v.tintedMap())
	v.remapped.SetColormap(v.remappedMap())
	v.discretized.SetColormap(v.discretizedMap())
}

func (v *viewer) pickTint() {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		r, g, b, _ := c.RGBA()
		v.tint = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
		v.refresh()
	})
	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), v.w.Canvas())
	modal.Show()
}

func (v *viewer) export() {
	dir, err := sdialog.Directory().Title("Export colorbars").Browse()
	if err != nil {
		if err.Error() == "Cancelled" {
			return
		}
		log.Println(err)
		return
	}
	cms := []*cmap.Colormap{v.base, v.tintedMap(), v.remappedMap(), v.discretizedMap()}
	if err := render.ExportAll(dir, cms, render.Config{Ticks: 5}); err != nil {
		log.Println(fmt.Errorf("export failed: %w", err))
		return
	}
	if err := open.Run(dir); err != nil {
		log.Println(fmt.Errorf("failed to open export folder: %w", err))
	}
}
