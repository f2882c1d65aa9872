package qualpal

import (
	"github.com/jolars/qualpal-go/internal/candidate"
	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/metrics"
)

// RGB is a color in nonlinear sRGB space, channels in [0,1].
type RGB = colorspace.RGB

// ParseHex parses "#rgb" or "#rrggbb" into an RGB value.
func ParseHex(hex string) (RGB, error) {
	return colorspace.ParseHex(hex)
}

// MetricType identifies a perceptual color-difference metric.
type MetricType = metrics.Type

const (
	DIN99d    = metrics.DIN99dType
	CIE76     = metrics.CIE76Type
	CIEDE2000 = metrics.CIEDE2000Type
)

// ParseMetricType maps a metric name to a MetricType.
func ParseMetricType(name string) (MetricType, error) {
	return metrics.ParseType(name)
}

// ColorspaceKind selects which cylindrical color space a procedurally
// sampled candidate pool is drawn from.
type ColorspaceKind = candidate.Space

const (
	HSL   = candidate.HSLSpace
	LCHab = candidate.LCHabSpace
)

// Range is an inclusive [Min, Max] interval for one cylindrical axis.
type Range = candidate.Range

// ColorspaceConfig describes a procedurally sampled candidate region.
type ColorspaceConfig struct {
	Kind        ColorspaceKind
	AngleRange  Range
	RadiusRange Range
	HeightRange Range
}
