package colorspace

import "math"

// LCHab is the cylindrical form of Lab: L in [0,100], C >= 0, H in [0,360).
type LCHab struct {
	L, C, H float64
}

// ToLab converts LCHab back to Lab.
func (c LCHab) ToLab() Lab {
	rad := c.H * math.Pi / 180.0
	return Lab{
		L: c.L,
		A: c.C * math.Cos(rad),
		B: c.C * math.Sin(rad),
	}
}

// ToXYZ converts LCHab to XYZ by routing through Lab, under D65.
func (c LCHab) ToXYZ() XYZ {
	return c.ToLab().ToXYZ()
}

// LCHabFromLab converts Lab to its cylindrical LCHab form.
func LCHabFromLab(c Lab) LCHab {
	h := math.Atan2(c.B, c.A) * 180.0 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCHab{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: h,
	}
}
