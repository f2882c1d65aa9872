package colorspace

import "math"

// HSL is hue (degrees, [0,360)), saturation and lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// ToRGB converts HSL to sRGB.
func (c HSL) ToRGB() RGB {
	return RGBFromHSL(c)
}

// ToXYZ converts HSL to XYZ by routing through RGB.
func (c HSL) ToXYZ() XYZ {
	return c.ToRGB().ToXYZ()
}

// Normalize wraps H into [0,360).
func (c HSL) Normalize() HSL {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: c.S, L: c.L}
}
