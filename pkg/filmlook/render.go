package filmlook

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime"
	"sync"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/filmlook/filmlook/pkg/fcolor"
)

// A Renderer applies one Look to frames. Pixels are independent, so the
// work is split by row across a pool of goroutines.
type Renderer struct {
	Look         Look
	Workers      int  // 0 means one per CPU
	KeepPreClamp bool // retain the raw composite alongside the output
}

// A Rendered is one processed frame. PreClamp is only populated when
// the renderer was asked to keep it; it holds the composite before the
// final clamp, where bloom and the screen blends can push channels past
// 1.0, and can be written out as an HDR image.
type Rendered struct {
	Out      *image.RGBA64
	PreClamp *PreClampImage
}

// RenderFrame evaluates the kernel once per output pixel at the given
// elapsed time. The source image is read-only for the duration; the
// returned frame is freshly allocated.
func (r Renderer)RenderFrame(src image.Image, elapsed float64) *Rendered {
	return r.RenderPreparedFrame(NewFrameFromImage(src), elapsed)
}

// RenderPreparedFrame is RenderFrame for callers that already unpacked
// the source (e.g. to apply several looks to the same frame).
func (r Renderer)RenderPreparedFrame(f *Frame, elapsed float64) *Rendered {
	w, h := f.Dx(), f.Dy()
	out := &Rendered{Out: image.NewRGBA64(image.Rect(0, 0, w, h))}
	if r.KeepPreClamp {
		out.PreClamp = NewPreClampImage(w, h)
	}

	nWorkers := r.Workers
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	rowsChan := make(chan int, h)

	for i := 0; i < nWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowsChan {
				for x := 0; x < w; x++ {
					pre, alpha := evaluatePixel(f, f.PixelCenter(x, y), r.Look, elapsed)
					final := fcolor.RGBA{RGB: pre.Clamped(), A: alpha}
					out.Out.SetRGBA64(x, y, final.ToRGBA64())
					if out.PreClamp != nil {
						out.PreClamp.set(x, y, pre)
					}
				}
			}
		}()
	}

	for y := 0; y < h; y++ {
		rowsChan <- y
	}
	close(rowsChan)
	wg.Wait()

	return out
}

// A PreClampImage is the unclamped composite, kept as float channels.
// Implements hdr.Image so it can go straight into the rgbe codec.
type PreClampImage struct {
	w, h int
	pix  []fcolor.RGB
}

func NewPreClampImage(w, h int) *PreClampImage {
	return &PreClampImage{w: w, h: h, pix: make([]fcolor.RGB, w*h)}
}

func (p *PreClampImage)set(x, y int, c fcolor.RGB) { p.pix[y*p.w+x] = c }

// Implement image.Image
func (p *PreClampImage)ColorModel() color.Model { return hdrcolor.RGBModel }
func (p *PreClampImage)Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.h) }
func (p *PreClampImage)At(x, y int) color.Color { return p.HDRAt(x, y) }

// Implement hdr.Image
func (p *PreClampImage)HDRAt(x, y int) hdrcolor.Color { return p.pix[y*p.w+x].ToHDR() }
func (p *PreClampImage)Size() int                     { return p.w * p.h }

// WriteToHDR dumps the pre-clamp composite as a Radiance .hdr file, for
// inspection in external HDR tooling.
func (p *PreClampImage)WriteToHDR(filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("preclamp open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	if err := rgbe.Encode(writer, p); err != nil {
		return fmt.Errorf("preclamp RGBE encode '%s': %v", filename, err)
	}
	return nil
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
