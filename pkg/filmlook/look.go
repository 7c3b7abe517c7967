package filmlook

import (
	"github.com/filmlook/filmlook/pkg/fcolor"
)

// A Palette holds the fixed colors the look pushes toward. The stock
// values are baked into the original design; presets may override them.
type Palette struct {
	Teal              fcolor.RGB // highlights drift here
	Orange            fcolor.RGB // shadows drift here
	HalationTint      fcolor.RGB // multiplied into halation samples
	SecondaryGlowTint fcolor.RGB // multiplied into secondary glow samples
}

func StockPalette() Palette {
	return Palette{
		Teal:              fcolor.RGB{R: 0.7, G: 0.85, B: 1.0},
		Orange:            fcolor.RGB{R: 1.0, G: 0.9, B: 0.7},
		HalationTint:      fcolor.RGB{R: 1.0, G: 0.2, B: 0.1},
		SecondaryGlowTint: fcolor.RGB{R: 0.6, G: 0.8, B: 1.0},
	}
}

// A Look is everything the kernel needs to know about the style being
// applied: the numeric params plus the palette. It is immutable for the
// duration of a frame, which is what makes the kernel a pure function.
type Look struct {
	Params  Params
	Palette Palette
}

func StockLook() Look {
	return Look{Params: DefaultParams(), Palette: StockPalette()}
}
