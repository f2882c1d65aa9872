package colorspace

// WhitePoint is a CIE XYZ reference white, used by the Lab and DIN99d
// conversions.
type WhitePoint struct {
	X, Y, Z float64
}

// D65 is the standard illuminant used as the default reference white
// throughout this package.
var D65 = WhitePoint{X: 0.95047, Y: 1.00000, Z: 1.08883}

// CIE Lab companding constants. original_source attests the exact-fraction
// pair (216/24389, 24389/27) on both the Lab->XYZ and XYZ->Lab paths; this
// package pins that pair for both directions (see DESIGN.md Open Question 1).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)
