package fcolor

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/filmlook/filmlook/pkg/fmath"
)

// An RGB is a color with float64 channels nominally in [0,1]. Values
// outside that range are legal mid-pipeline - the compositor runs hot
// before its final clamp - so nothing here clamps unless asked to.
type RGB struct {
	R, G, B float64
}

// An RGBA is an RGB plus straight (non-premultiplied in spirit) alpha.
type RGBA struct {
	RGB
	A float64
}

// Luma returns the Rec.601 weighted luminance. The exact weights are
// part of the look: every threshold in the filter is tuned against them.
func (c RGB)Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Pow raises each channel to the given exponent. Channels are assumed
// non-negative; negative inputs produce NaN, same as the GPU would.
func (c RGB)Pow(e float64) RGB {
	return RGB{math.Pow(c.R, e), math.Pow(c.G, e), math.Pow(c.B, e)}
}

// Lerp blends toward `to` by t, componentwise.
func (c RGB)Lerp(to RGB, t float64) RGB {
	return RGB{
		fmath.Lerp(c.R, to.R, t),
		fmath.Lerp(c.G, to.G, t),
		fmath.Lerp(c.B, to.B, t),
	}
}

func (c RGB)Add(o RGB) RGB        { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB)AddScalar(s float64) RGB { return RGB{c.R + s, c.G + s, c.B + s} }
func (c RGB)Scale(s float64) RGB  { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB)Mul(o RGB) RGB        { return RGB{c.R * o.R, c.G * o.G, c.B * o.B} }

// Screen is the standard screen blend: 1 - (1-base)(1-blend). Bounded
// for inputs in [0,1]; the compositor feeds it bases above 1.0 on
// purpose, which must pass through unclamped.
func Screen(base, blend RGB) RGB {
	return RGB{
		1 - (1-base.R)*(1-blend.R),
		1 - (1-base.G)*(1-blend.G),
		1 - (1-base.B)*(1-blend.B),
	}
}

func (c RGB)Clamped() RGB {
	return RGB{
		fmath.Clamp(c.R, 0, 1),
		fmath.Clamp(c.G, 0, 1),
		fmath.Clamp(c.B, 0, 1),
	}
}

func (c RGB)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f]", c.R, c.G, c.B)
}

// ToHDR hands the color to the hdr library, e.g. for RGBE encoding of
// a pre-clamp composite.
func (c RGB)ToHDR() hdrcolor.RGB {
	return hdrcolor.RGB{R: c.R, G: c.G, B: c.B}
}

// FromColor maps any image/color value into float channels. The
// uint16-range channels map to [0.0, 1.0], same convention as a
// normalized GPU texture read.
func FromColor(col color.Color) RGBA {
	r, g, b, a := col.RGBA()
	return RGBA{
		RGB: RGB{
			R: float64(r) / float64(0xFFFF),
			G: float64(g) / float64(0xFFFF),
			B: float64(b) / float64(0xFFFF),
		},
		A: float64(a) / float64(0xFFFF),
	}
}

// ToRGBA64 quantizes back to 16 bits per channel, clamping on the way
// out. This is the only place the output range is enforced.
func (c RGBA)ToRGBA64() color.RGBA64 {
	q := func(v float64) uint16 { return uint16(fmath.Clamp(v, 0, 1)*float64(0xFFFF) + 0.5) }
	return color.RGBA64{R: q(c.R), G: q(c.G), B: q(c.B), A: q(c.A)}
}

// FromHex parses "#rrggbb" into an RGB, for tint overrides in preset
// files.
func FromHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("tint %q: %v", s, err)
	}
	return RGB{col.R, col.G, col.B}, nil
}
