package colorspace

// XYZ is the CIE 1931 tristimulus space, components >= 0.
type XYZ struct {
	X, Y, Z float64
}

// xyzToRGBMatrix is the fixed XYZ (D65) -> sRGB matrix, the inverse of
// rgbToXYZMatrix.
var xyzToRGBMatrix = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// ToXYZ is the identity conversion; it gives XYZ the same ToXYZ method as
// the other color types.
func (v XYZ) ToXYZ() XYZ { return v }

// ToRGB converts XYZ (D65) to clamped sRGB.
func (v XYZ) ToRGB() RGB {
	return RGBFromXYZ(v)
}

// ToLab converts XYZ to Lab under the given white point.
func (v XYZ) ToLab(wp WhitePoint) Lab {
	return LabFromXYZ(v, wp)
}

// ToDIN99d converts XYZ directly to DIN99d (D65 white point).
func (v XYZ) ToDIN99d() DIN99d {
	return DIN99dFromXYZ(v)
}
