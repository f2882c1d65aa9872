package colorspace

import "math"

// Lab is the CIE L*a*b* space: L in [0,100], a/b in [-128,127].
type Lab struct {
	L, A, B float64
}

// ToXYZ converts Lab back to XYZ under the D65 white point. Use
// LabToXYZWhitePoint for a non-default white point.
func (c Lab) ToXYZ() XYZ {
	return LabToXYZWhitePoint(c, D65)
}

// LabFromXYZ converts XYZ to Lab under the given white point.
func LabFromXYZ(v XYZ, wp WhitePoint) Lab {
	xr := v.X / wp.X
	yr := v.Y / wp.Y
	zr := v.Z / wp.Z

	fx := labF(xr)
	fy := labF(yr)
	fz := labF(zr)

	return Lab{
		L: clampRange(116.0*fy-16.0, 0, 100),
		A: clampRange(500.0*(fx-fy), -128, 127),
		B: clampRange(200.0*(fy-fz), -128, 127),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16.0) / 116.0
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116.0*t - 16.0) / labKappa
}

// LabToXYZWhitePoint converts Lab to XYZ under an explicit white point.
func LabToXYZWhitePoint(c Lab, wp WhitePoint) XYZ {
	fy := (c.L + 16.0) / 116.0
	fx := c.A/500.0 + fy
	fz := fy - c.B/200.0

	yr := c.L
	var y float64
	if yr > labKappa*labEpsilon {
		y = math.Pow(fy, 3)
	} else {
		y = yr / labKappa
	}

	return XYZ{
		X: labFInv(fx) * wp.X,
		Y: y * wp.Y,
		Z: labFInv(fz) * wp.Z,
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
