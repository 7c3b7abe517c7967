package filmlook

import (
	"image"
	"math"

	"github.com/filmlook/filmlook/pkg/fcolor"
	"github.com/filmlook/filmlook/pkg/fmath"
)

// A Frame is one video frame unpacked into float channels, addressable
// by continuous normalized coordinates. It reproduces the sampler the
// look was designed against: bilinear filtering with a fully
// transparent black border - any read outside [0,1]x[0,1] comes back
// (0,0,0,0), it never clamps to an edge pixel. Near the frame edge the
// glow accumulators deliberately see those black samples, which pulls
// the local average down.
type Frame struct {
	w, h int
	pix  []fcolor.RGBA // row-major, y*w + x

	invSize fmath.Vec2 // (1/w, 1/h), precomputed once per frame
}

func NewFrame(w, h int) *Frame {
	return &Frame{
		w: w, h: h,
		pix:     make([]fcolor.RGBA, w*h),
		invSize: fmath.Vec2{1 / float64(w), 1 / float64(h)},
	}
}

// NewFrameFromImage unpacks any image.Image. Channel values are
// normalized from the uint16 range down to [0,1].
func NewFrameFromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			f.pix[y*f.w+x] = fcolor.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return f
}

func (f *Frame)Dx() int { return f.w }
func (f *Frame)Dy() int { return f.h }

// PixelSize is the reciprocal resolution: the normalized-coordinate
// step between adjacent texels on each axis.
func (f *Frame)PixelSize() fmath.Vec2 { return f.invSize }

// PixelCenter returns the normalized coordinate of texel (x,y)'s center.
func (f *Frame)PixelCenter(x, y int) fmath.Vec2 {
	return fmath.Vec2{(float64(x) + 0.5) / float64(f.w), (float64(y) + 0.5) / float64(f.h)}
}

func (f *Frame)SetTexel(x, y int, c fcolor.RGBA) { f.pix[y*f.w+x] = c }

// texel reads one texel, honoring the transparent border for
// out-of-grid fetches (the partial reads a bilinear tap makes near the
// edge).
func (f *Frame)texel(x, y int) fcolor.RGBA {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return fcolor.RGBA{}
	}
	return f.pix[y*f.w+x]
}

// Sample reads the frame at a continuous normalized coordinate with
// bilinear filtering. Coordinates outside [0,1] on either axis return
// transparent black outright.
func (f *Frame)Sample(uv fmath.Vec2) fcolor.RGBA {
	if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
		return fcolor.RGBA{}
	}

	tx := uv[0]*float64(f.w) - 0.5
	ty := uv[1]*float64(f.h) - 0.5
	x0 := math.Floor(tx)
	y0 := math.Floor(ty)
	fx := tx - x0
	fy := ty - y0
	ix, iy := int(x0), int(y0)

	c00 := f.texel(ix, iy)
	c10 := f.texel(ix+1, iy)
	c01 := f.texel(ix, iy+1)
	c11 := f.texel(ix+1, iy+1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	return fcolor.RGBA{
		RGB: fcolor.RGB{
			R: c00.R*w00 + c10.R*w10 + c01.R*w01 + c11.R*w11,
			G: c00.G*w00 + c10.G*w10 + c01.G*w01 + c11.G*w11,
			B: c00.B*w00 + c10.B*w10 + c01.B*w01 + c11.B*w11,
		},
		A: c00.A*w00 + c10.A*w10 + c01.A*w01 + c11.A*w11,
	}
}
