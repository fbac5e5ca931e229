// cmapgen renders colormaps to PNG colorbars and previews them in the
// terminal. Args are built-in names, or "#rrggbb" colors that together
// form a custom colormap.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/roffe/cmap/pkg/cmap"
	"github.com/roffe/cmap/pkg/render"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	outDir  = flag.String("out", "", "directory to write <name>.png colorbars to")
	width   = flag.Int("width", 512, "colorbar width in pixels")
	height  = flag.Int("height", 48, "colorbar height in pixels")
	ticks   = flag.Int("ticks", 5, "tick labels under the bar, 0 for none")
	nBands  = flag.Int("n", 0, "discretize into n bands before rendering, 0 for continuous")
	reverse = flag.Bool("reverse", false, "reverse the colormaps")
	useHCL  = flag.Bool("hcl", false, "blend custom colormaps in HCL space instead of straight RGB")
	list    = flag.Bool("list", false, "list built-in colormap names and exit")
)

func main() {
	flag.Parse()

	if *list {
		for _, name := range cmap.Names() {
			fmt.Println(name)
		}
		return
	}

	// plain args are built-in names, "#rrggbb" args build one custom map
	var names, hexes []string
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "#") {
			hexes = append(hexes, arg)
			continue
		}
		names = append(names, arg)
	}
	if len(names) == 0 && len(hexes) == 0 {
		names = cmap.Names()
	}

	var cms []*cmap.Colormap
	for _, name := range names {
		cm, err := cmap.Get(name)
		if err != nil {
			log.Fatal(err)
		}
		cms = append(cms, cm)
	}
	if len(hexes) > 0 {
		build := cmap.FromHex
		if *useHCL {
			build = cmap.FromHexHCL
		}
		cm, err := build("custom", hexes...)
		if err != nil {
			log.Fatal(err)
		}
		cms = append(cms, cm)
	}
	for i, cm := range cms {
		if *reverse {
			cm = cm.Reversed()
		}
		if *nBands > 0 {
			var err error
			cm, err = cm.Discretize(*nBands)
			if err != nil {
				log.Fatal(err)
			}
		}
		cms[i] = cm
	}

	for _, cm := range cms {
		preview(cm)
	}

	if *outDir == "" {
		return
	}
	cfg := render.Config{Width: *width, Height: *height, Ticks: *ticks}
	if err := render.ExportAll(*outDir, cms, cfg); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("wrote %d colorbars to %s", len(cms), *outDir)
}

// preview prints one line of background-colored blocks per colormap.
func preview(cm *cmap.Colormap) {
	fmt.Fprintf(os.Stdout, "%-16s", cm.Name)
	for _, c := range cm.Palette(48) {
		fmt.Print(color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(" "))
	}
	fmt.Println()
}
