package filmlook

// Params is the full set of per-frame numeric controls for the look,
// frozen for the duration of one frame's render. The UI ranges noted
// below are what a host would normally expose; nothing here enforces
// them - the kernel behaves sanely for any non-negative intensity and
// any radius.
type Params struct {
	Contrast     float64 // power curve exponent, UI range [0.5, 2.5]
	TealAmount   float64 // highlight split-tone weight, [0, 1]
	OrangeAmount float64 // shadow split-tone weight, [0, 1]

	BloomIntensity float64 // [0, 4]
	BloomThreshold float64 // [0.3, 1]
	BloomRadius    int     // [1, 5]

	HalationIntensity float64 // [0, 4]
	HalationThreshold float64 // [0.5, 1]
	HalationRadius    int     // [2, 8]

	SecondaryGlowIntensity float64 // [0, 3]
	SecondaryGlowThreshold float64 // [0.3, 1]
	SecondaryGlowRadius    int     // [1, 7]

	GrainIntensity float64 // [0, 0.2]

	ShakeIntensity float64 // offset amplitude in normalized coords, [0, 0.02]
	ShakeSpeed     float64 // [0, 20]
}

// DefaultParams is the stock look - a light grade with modest glow and
// a whisper of grain and shake.
func DefaultParams() Params {
	return Params{
		Contrast:     1.2,
		TealAmount:   0.2,
		OrangeAmount: 0.15,

		BloomIntensity: 0.5,
		BloomThreshold: 0.8,
		BloomRadius:    2,

		HalationIntensity: 0.4,
		HalationThreshold: 0.95,
		HalationRadius:    4,

		SecondaryGlowIntensity: 0.3,
		SecondaryGlowThreshold: 0.75,
		SecondaryGlowRadius:    3,

		GrainIntensity: 0.04,

		ShakeIntensity: 0.002,
		ShakeSpeed:     5.0,
	}
}

// maxScanRadius is the shared bound for the glow neighborhood scan: the
// largest of the three per-effect radii, so one pass over the square
// can feed all three accumulators.
func (p Params)maxScanRadius() int {
	r := p.BloomRadius
	if p.HalationRadius > r {
		r = p.HalationRadius
	}
	if p.SecondaryGlowRadius > r {
		r = p.SecondaryGlowRadius
	}
	return r
}

// glowEnabled reports whether any of the three glow effects will
// contribute at all, so a frame with everything switched off can skip
// the neighborhood scan entirely.
func (p Params)glowEnabled() bool {
	return p.BloomIntensity > 0 || p.HalationIntensity > 0 || p.SecondaryGlowIntensity > 0
}
