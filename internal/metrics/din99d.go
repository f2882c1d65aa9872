package metrics

import (
	"math"

	"github.com/jolars/qualpal-go/internal/colorspace"
)

// DIN99dOptions parameterizes the optional power transform applied to the
// raw DIN99d Euclidean distance, used to better approximate just-noticeable
// differences for large color differences.
type DIN99dOptions struct {
	UsePowerTransform bool
	Power             float64
	Scale             float64
}

// DefaultDIN99dOptions applies the power transform by default:
// distance^0.74 * 1.28.
var DefaultDIN99dOptions = DIN99dOptions{UsePowerTransform: true, Power: 0.74, Scale: 1.28}

// DIN99dDistance computes the Euclidean distance between two XYZ colors in
// DIN99d space, with the power transform applied unless opts disables it.
func DIN99dDistance(a, b colorspace.XYZ, opts DIN99dOptions) float64 {
	return DIN99dDistanceNative(a.ToDIN99d(), b.ToDIN99d(), opts)
}

// DIN99dDistanceNative computes the DIN99d distance directly from two
// DIN99d values, for callers that have already converted a color pool.
func DIN99dDistanceNative(da, db colorspace.DIN99d, opts DIN99dOptions) float64 {
	dl := da.L - db.L
	daa := da.A - db.A
	dbb := da.B - db.B

	euclidean := math.Sqrt(dl*dl + daa*daa + dbb*dbb)
	if !opts.UsePowerTransform || euclidean == 0 {
		return euclidean
	}
	return math.Pow(euclidean, opts.Power) * opts.Scale
}
