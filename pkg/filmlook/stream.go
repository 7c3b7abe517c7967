package filmlook

import (
	"fmt"
	"image"
	"time"

	"github.com/skypies/util/histogram"

	"github.com/filmlook/filmlook/pkg/fcolor"
)

// A Stream owns the only state that crosses frames: the elapsed-time
// clock, advanced once per frame by the host (us), and read-only while
// a frame renders. Everything else the kernel touches is frame-scoped.
type Stream struct {
	Renderer

	Elapsed float64 // seconds, monotonically accumulated via Tick

	nFrames     int
	frameMillis histogram.Histogram
}

func NewStream(lk Look) *Stream {
	return &Stream{
		Renderer:    Renderer{Look: lk},
		frameMillis: histogram.Histogram{NumBuckets: 100, ValMin: 0, ValMax: 1000},
	}
}

// Tick advances the stream clock by dt seconds. Call it between frames,
// never during one.
func (s *Stream)Tick(dt float64) {
	s.Elapsed += dt
}

// RenderNext renders one frame at the current clock and records how
// long it took.
func (s *Stream)RenderNext(src image.Image) *Rendered {
	start := time.Now()
	out := s.RenderFrame(src, s.Elapsed)
	s.frameMillis.Add(histogram.ScalarVal(int(time.Since(start).Milliseconds())))
	s.nFrames++
	return out
}

func (s *Stream)FrameCount() int { return s.nFrames }

// Stats summarizes per-frame render times across the stream so far.
func (s *Stream)Stats() string {
	return fmt.Sprintf("%d frames, ms/frame %s", s.nFrames, s.frameMillis.String())
}

// LumaHistogram buckets the output luma of a rendered frame over
// [0,255], a quick way to see what a look did to the tonal balance.
func LumaHistogram(img *image.RGBA64) histogram.Histogram {
	hist := histogram.Histogram{NumBuckets: 256, ValMin: 0, ValMax: 256}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			luma := fcolor.FromColor(img.RGBA64At(x, y)).Luma()
			hist.Add(histogram.ScalarVal(int(luma * 255.0)))
		}
	}

	return hist
}
