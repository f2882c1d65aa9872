package metrics

import "github.com/jolars/qualpal-go/internal/colorspace"

// Distance dispatches to the metric named by t, using default parameters
// for DIN99d's power transform. This is the runtime-dispatched path for a
// single pair of XYZ values and a MetricType picked at configuration time;
// the distance-matrix builder instead converts a whole pool to the
// metric's native space once and calls the *Lab / *Native functions.
func Distance(a, b colorspace.XYZ, t Type) float64 {
	switch t {
	case CIE76Type:
		return CIE76Distance(a, b)
	case CIEDE2000Type:
		return CIEDE2000Distance(a, b)
	default:
		return DIN99dDistance(a, b, DefaultDIN99dOptions)
	}
}
