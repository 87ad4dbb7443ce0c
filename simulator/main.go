// Command simulator renders the screens of every hardware model into PNG
// files, so layouts can be reviewed without a device.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/fogleman/gg"
	"github.com/rook-computer/fwdisplay/internal/app"
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/model"
	"github.com/rook-computer/fwdisplay/internal/model/mercury"
	"github.com/rook-computer/fwdisplay/internal/model/one"
	"github.com/rook-computer/fwdisplay/internal/model/tt"
	"github.com/rook-computer/fwdisplay/internal/render"
)

var variants = map[string]model.UIFeaturesCommon{
	"tt":      tt.Features{},
	"mercury": mercury.Features{},
	"one":     one.Features{},
}

func main() {
	outDir := flag.String("out", "./sim-out", "directory for rendered PNG files")
	scenario := flag.String("scenario", "all", "simulator scenario: boot | fatal | all")
	variantList := flag.String("models", "tt,mercury,one", "comma separated hardware models to render")
	title := flag.String("title", "Error", "fatal screen title")
	message := flag.String("message", "Something failed", "fatal screen message")
	footer := flag.String("footer", app.DefaultFooter, "fatal screen footer")
	scale := flag.Int("scale", 2, "integer upscale factor for the PNG output")
	debug := flag.Bool("debug", false, "log render diagnostics to stderr")
	flag.Parse()

	if *debug {
		display.Logger = logging.NewWriter(os.Stderr)
		render.FontLogger = display.Logger
	}
	// Only the final frame of an animation ends up in the PNG.
	render.FrameInterval = 0
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Println("output dir error:", err)
		os.Exit(2)
	}

	scenarios, err := scenarioList(*scenario)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	for _, name := range strings.Split(*variantList, ",") {
		name = strings.TrimSpace(name)
		ui, ok := variants[name]
		if !ok {
			fmt.Printf("unknown model %q\n", name)
			os.Exit(2)
		}
		for _, sc := range scenarios {
			path := filepath.Join(*outDir, name+"-"+sc+".png")
			img := renderScenario(ui, sc, *title, *message, *footer)
			if err := gg.SavePNG(path, upscale(img, *scale)); err != nil {
				fmt.Println("write error:", err)
				os.Exit(1)
			}
			fmt.Println("wrote", path)
		}
	}
}

func scenarioList(s string) ([]string, error) {
	switch s {
	case "boot", "fatal":
		return []string{s}, nil
	case "all", "":
		return []string{"boot", "fatal"}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q", s)
	}
}

func renderScenario(ui model.UIFeaturesCommon, scenario, title, message, footer string) *image.RGBA {
	screen := ui.Screen()
	canvas := render.NewImageCanvas(screen.Width, screen.Height)
	display.Use(canvas)
	defer display.Close()

	switch scenario {
	case "boot":
		ui.BacklightOn()
		ui.ScreenBootStage2()
	case "fatal":
		ui.ScreenFatalError(title, message, footer)
	}
	return canvas.Image()
}

func upscale(img *image.RGBA, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return transform.Resize(img, b.Dx()*factor, b.Dy()*factor, transform.NearestNeighbor)
}
