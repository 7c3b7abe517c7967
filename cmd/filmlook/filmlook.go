package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/filmlook/filmlook/pkg/filmlook"
)

var (
	fVerbosity    int
	fWorkers      int
	fFPS          float64
	fStartTime    float64
	fOutDir       string
	fDumpPreClamp bool

	fContrast     float64
	fTealAmount   float64
	fOrangeAmount float64

	fBloomIntensity float64
	fBloomThreshold float64
	fBloomRadius    int

	fHalationIntensity float64
	fHalationThreshold float64
	fHalationRadius    int

	fSecondaryGlowIntensity float64
	fSecondaryGlowThreshold float64
	fSecondaryGlowRadius    int

	fGrainIntensity float64
	fShakeIntensity float64
	fShakeSpeed     float64
)

func init() {
	def := filmlook.DefaultParams()

	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.IntVar(&fWorkers, "workers", 0, "render goroutines (0 = one per CPU)")
	flag.Float64Var(&fFPS, "fps", 30, "playback rate of the frame sequence")
	flag.Float64Var(&fStartTime, "start", 0, "stream clock at the first frame, in seconds")
	flag.StringVar(&fOutDir, "o", ".", "directory for output frames")
	flag.BoolVar(&fDumpPreClamp, "hdr", false, "also dump the pre-clamp composite as .hdr")

	flag.Float64Var(&fContrast, "contrast", def.Contrast, "contrast power curve [0.5, 2.5]")
	flag.Float64Var(&fTealAmount, "teal", def.TealAmount, "highlight teal shift [0, 1]")
	flag.Float64Var(&fOrangeAmount, "orange", def.OrangeAmount, "shadow orange shift [0, 1]")

	flag.Float64Var(&fBloomIntensity, "bloom", def.BloomIntensity, "bloom intensity [0, 4]")
	flag.Float64Var(&fBloomThreshold, "bloomthreshold", def.BloomThreshold, "bloom luma threshold [0.3, 1]")
	flag.IntVar(&fBloomRadius, "bloomradius", def.BloomRadius, "bloom radius in pixels [1, 5]")

	flag.Float64Var(&fHalationIntensity, "halation", def.HalationIntensity, "halation intensity [0, 4]")
	flag.Float64Var(&fHalationThreshold, "halationthreshold", def.HalationThreshold, "halation luma threshold [0.5, 1]")
	flag.IntVar(&fHalationRadius, "halationradius", def.HalationRadius, "halation radius in pixels [2, 8]")

	flag.Float64Var(&fSecondaryGlowIntensity, "glow", def.SecondaryGlowIntensity, "secondary glow intensity [0, 3]")
	flag.Float64Var(&fSecondaryGlowThreshold, "glowthreshold", def.SecondaryGlowThreshold, "secondary glow luma threshold [0.3, 1]")
	flag.IntVar(&fSecondaryGlowRadius, "glowradius", def.SecondaryGlowRadius, "secondary glow radius in pixels [1, 7]")

	flag.Float64Var(&fGrainIntensity, "grain", def.GrainIntensity, "film grain intensity [0, 0.2]")
	flag.Float64Var(&fShakeIntensity, "shake", def.ShakeIntensity, "camera shake amplitude [0, 0.02]")
	flag.Float64Var(&fShakeSpeed, "shakespeed", def.ShakeSpeed, "camera shake speed [0, 20]")

	flag.Parse()

	log.Printf("filmlook starting\n")
}

// applyFlagOverrides copies values onto the config for just the flags
// the user actually set, so a preset yaml isn't stomped by defaults.
func applyFlagOverrides(cfg *filmlook.Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			cfg.Verbosity = fVerbosity
		case "workers":
			cfg.Workers = fWorkers
		case "fps":
			cfg.FPS = fFPS
		case "hdr":
			cfg.DumpPreClamp = fDumpPreClamp

		case "contrast":
			cfg.Params.Contrast = fContrast
		case "teal":
			cfg.Params.TealAmount = fTealAmount
		case "orange":
			cfg.Params.OrangeAmount = fOrangeAmount

		case "bloom":
			cfg.Params.BloomIntensity = fBloomIntensity
		case "bloomthreshold":
			cfg.Params.BloomThreshold = fBloomThreshold
		case "bloomradius":
			cfg.Params.BloomRadius = fBloomRadius

		case "halation":
			cfg.Params.HalationIntensity = fHalationIntensity
		case "halationthreshold":
			cfg.Params.HalationThreshold = fHalationThreshold
		case "halationradius":
			cfg.Params.HalationRadius = fHalationRadius

		case "glow":
			cfg.Params.SecondaryGlowIntensity = fSecondaryGlowIntensity
		case "glowthreshold":
			cfg.Params.SecondaryGlowThreshold = fSecondaryGlowThreshold
		case "glowradius":
			cfg.Params.SecondaryGlowRadius = fSecondaryGlowRadius

		case "grain":
			cfg.Params.GrainIntensity = fGrainIntensity
		case "shake":
			cfg.Params.ShakeIntensity = fShakeIntensity
		case "shakespeed":
			cfg.Params.ShakeSpeed = fShakeSpeed
		}
	})
}

func outputName(framePath, suffix, ext string) string {
	base := strings.TrimSuffix(filepath.Base(framePath), filepath.Ext(framePath))
	return filepath.Join(fOutDir, fmt.Sprintf("%s-%s.%s", base, suffix, ext))
}

func main() {
	job := filmlook.NewJob()
	if err := job.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}
	if len(job.FramePaths) == 0 {
		log.Fatal("no input frames; pass image files or directories (plus an optional preset .yaml)")
	}

	applyFlagOverrides(&job.Config)

	if job.Config.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", job.Config.AsYaml())
	}

	if job.Config.FPS <= 0 {
		log.Fatalf("fps must be positive, got %f", job.Config.FPS)
	}

	lk, err := job.Config.Look()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(fOutDir, 0755); err != nil {
		log.Fatalf("mkdir %s: %v", fOutDir, err)
	}

	stream := filmlook.NewStream(lk)
	stream.Workers = job.Config.Workers
	stream.KeepPreClamp = job.Config.DumpPreClamp
	stream.Elapsed = fStartTime

	dt := 1.0 / job.Config.FPS

	for _, framePath := range job.FramePaths {
		img, err := filmlook.LoadImage(framePath)
		if err != nil {
			log.Fatal(err)
		}

		rendered := stream.RenderNext(img)

		outPath := outputName(framePath, "filmlook", "png")
		if err := filmlook.WritePNG(rendered.Out, outPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (t=%.3fs)", outPath, stream.Elapsed)

		if rendered.PreClamp != nil {
			if err := rendered.PreClamp.WriteToHDR(outputName(framePath, "preclamp", "hdr")); err != nil {
				log.Fatal(err)
			}
		}

		if job.Config.Verbosity > 1 {
			log.Printf("output luma: %s", filmlook.LumaHistogram(rendered.Out))
		}

		stream.Tick(dt)
	}

	log.Printf("done: %s", stream.Stats())
}
