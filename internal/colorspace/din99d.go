package colorspace

import "math"

// DIN99d is the DIN99d uniform color space, L in [0,100], a/b in [-128,127].
type DIN99d struct {
	L, A, B float64
}

// din99dU is the fixed 50 degree rotation angle used by the DIN99d
// derivation (in radians).
const din99dU = 50.0 * math.Pi / 180.0

// ToXYZ is not implemented for DIN99d: the forward derivation (XYZ ->
// DIN99d) is not invertible with the published formula, and the spec and
// original implementation only ever construct DIN99d from XYZ, never the
// reverse. Metrics and matrices only need DIN99dFromXYZ.
func (c DIN99d) ToXYZ() XYZ {
	panic("colorspace: DIN99d -> XYZ is not part of the qualpal color algebra")
}

// DIN99dFromXYZ converts XYZ (D65) to DIN99d following the DIN99d
// derivation: an adjusted-white Lab step, a 50-degree hue rotation, and
// the DIN99d logarithmic lightness/chroma compression.
func DIN99dFromXYZ(v XYZ) DIN99d {
	adjustedX := 1.12*v.X - 0.12*v.Z
	adjustedWP := WhitePoint{X: 1.12*D65.X - 0.12*D65.Z, Y: D65.Y, Z: D65.Z}

	lab := LabToXYZToLab(XYZ{X: adjustedX, Y: v.Y, Z: v.Z}, adjustedWP)

	e := lab.A*math.Cos(din99dU) + lab.B*math.Sin(din99dU)
	f := 1.14 * (lab.B*math.Cos(din99dU) - lab.A*math.Sin(din99dU))
	g := math.Hypot(e, f)

	c99d := 22.5 * math.Log1p(0.06*g)
	h99d := math.Atan2(f, e) + din99dU

	return DIN99d{
		L: clampRange(325.22*math.Log1p(0.0036*lab.L), 0, 100),
		A: clampRange(c99d*math.Cos(h99d), -128, 127),
		B: clampRange(c99d*math.Sin(h99d), -128, 127),
	}
}

// LabToXYZToLab computes the Lab representation of an XYZ value under a
// non-default white point; it is a thin wrapper over LabFromXYZ. The DIN99d
// derivation calls it with an *adjusted* white, not the D65 default.
func LabToXYZToLab(v XYZ, wp WhitePoint) Lab {
	return LabFromXYZ(v, wp)
}
