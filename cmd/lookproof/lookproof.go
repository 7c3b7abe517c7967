package main

// lookproof renders a synthetic test scene through a set of built-in
// presets and tiles the results into one annotated contact sheet, for
// eyeballing how preset tweaks change the look side by side.

import (
	"flag"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/fogleman/gg"

	"github.com/filmlook/filmlook/pkg/filmlook"
)

var (
	fPanelWidth  int
	fPanelHeight int
	fElapsed     float64
	fOutput      string
)

func init() {
	flag.IntVar(&fPanelWidth, "w", 480, "width of each panel")
	flag.IntVar(&fPanelHeight, "h", 270, "height of each panel")
	flag.Float64Var(&fElapsed, "t", 0.42, "stream clock to render at, in seconds")
	flag.StringVar(&fOutput, "o", "proof.png", "output contact sheet")
	flag.Parse()
}

// proofPresets are the looks worth comparing: the stock grade, the
// effects pushed hard, a warm low-fi print, and everything off as the
// control panel.
func proofPresets() map[string]filmlook.Config {
	stock := filmlook.NewConfig()

	heavy := filmlook.NewConfig()
	heavy.Params.BloomIntensity = 2.5
	heavy.Params.BloomRadius = 5
	heavy.Params.HalationIntensity = 1.8
	heavy.Params.HalationRadius = 8
	heavy.Params.SecondaryGlowIntensity = 1.2
	heavy.Params.SecondaryGlowRadius = 7

	dirty := filmlook.NewConfig()
	dirty.Params.Contrast = 1.6
	dirty.Params.OrangeAmount = 0.5
	dirty.Params.TealAmount = 0.05
	dirty.Params.GrainIntensity = 0.15
	dirty.Params.ShakeIntensity = 0.006
	dirty.HalationTint = "#ff5020"

	clean := filmlook.NewConfig()
	clean.Params = filmlook.Params{Contrast: 1.0}

	return map[string]filmlook.Config{
		"1-untouched":  clean,
		"2-stock":      stock,
		"3-heavy-glow": heavy,
		"4-dirty":      dirty,
	}
}

// buildTestScene draws a frame with something for every stage to bite
// on: a dark-to-mid gradient, hot highlights for the glows, and a
// midtone strip for the split-tone.
func buildTestScene(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	grad := gg.NewLinearGradient(0, 0, fw, fh)
	grad.AddColorStop(0, color.RGBA{18, 22, 30, 255})
	grad.AddColorStop(1, color.RGBA{96, 92, 100, 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, fw, fh)
	dc.Fill()

	// Hot spots for bloom/halation to latch onto
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(fw*0.25, fh*0.3, fh*0.06)
	dc.Fill()
	dc.SetRGB255(255, 240, 200)
	dc.DrawCircle(fw*0.7, fh*0.25, fh*0.04)
	dc.Fill()

	// A gray staircase across the bottom for the split-tone ramps
	steps := 8
	for i := 0; i < steps; i++ {
		g := float64(i) / float64(steps-1)
		dc.SetRGB(g, g, g)
		dc.DrawRectangle(fw*float64(i)/float64(steps), fh*0.8, fw/float64(steps), fh*0.2)
		dc.Fill()
	}

	return dc.Image()
}

func main() {
	scene := buildTestScene(fPanelWidth, fPanelHeight)
	frame := filmlook.NewFrameFromImage(scene)

	presets := proofPresets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	labelHeight := 24
	sheet := gg.NewContext(fPanelWidth*len(names), fPanelHeight+labelHeight)
	sheet.SetRGB(0, 0, 0)
	sheet.Clear()

	for i, name := range names {
		cfg := presets[name]
		lk, err := cfg.Look()
		if err != nil {
			log.Fatalf("preset %s: %v", name, err)
		}

		r := filmlook.Renderer{Look: lk}
		rendered := r.RenderPreparedFrame(frame, fElapsed)
		log.Printf("rendered preset %s", name)

		sheet.DrawImage(rendered.Out, i*fPanelWidth, labelHeight)
		sheet.SetRGB(1, 1, 1)
		sheet.DrawString(name, float64(i*fPanelWidth)+8, float64(labelHeight)-8)
	}

	if err := sheet.SavePNG(fOutput); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", fOutput)
}
