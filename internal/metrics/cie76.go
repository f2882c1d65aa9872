package metrics

import (
	"math"

	"github.com/jolars/qualpal-go/internal/colorspace"
)

// CIE76Distance is the Euclidean distance between two XYZ colors in CIE
// Lab space (D65), i.e. classic delta-E.
func CIE76Distance(a, b colorspace.XYZ) float64 {
	return CIE76DistanceLab(a.ToLab(colorspace.D65), b.ToLab(colorspace.D65))
}

// CIE76DistanceLab computes the classic delta-E directly from two Lab
// values, for callers that have already converted a color pool into Lab.
func CIE76DistanceLab(la, lb colorspace.Lab) float64 {
	dl := la.L - lb.L
	da := la.A - lb.A
	db := la.B - lb.B

	return math.Sqrt(dl*dl + da*da + db*db)
}
