package candidate

import (
	"fmt"

	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/qerrors"
)

// Generate draws n points along the 3-D Halton sequence, affinely scales
// them onto (angleRange, radiusRange, heightRange), and returns them as
// sRGB colors converted through the requested cylindrical space.
//
// For HSLSpace the axes are emitted in (h, s, l) order; for LCHabSpace
// they are emitted in (l, c, h) order, i.e. radiusRange maps to chroma and
// heightRange maps to lightness, while angleRange always maps to hue.
func Generate(n int, space Space, angleRange, radiusRange, heightRange Range) ([]colorspace.RGB, error) {
	if n <= 0 {
		return nil, qerrors.Domain("n", "must be positive, got %d", n)
	}
	if err := ValidateRanges(space, angleRange, radiusRange, heightRange); err != nil {
		return nil, fmt.Errorf("validate candidate ranges: %w", err)
	}

	colors := make([]colorspace.RGB, n)
	for i := 0; i < n; i++ {
		hx, hy, hz := haltonTriple(i + 1)

		angle := scale(hx, angleRange)
		radius := scale(hy, radiusRange)
		height := scale(hz, heightRange)

		if angle < 0 {
			angle += 360
		}

		switch space {
		case LCHabSpace:
			colors[i] = colorspace.LCHab{L: height, C: radius, H: angle}.ToXYZ().ToRGB()
		default:
			colors[i] = colorspace.HSL{H: angle, S: radius, L: height}.ToRGB()
		}
	}

	return colors, nil
}

func scale(unit float64, r Range) float64 {
	return r.Min + unit*(r.Max-r.Min)
}

// ValidateRanges checks that angleRange, radiusRange, and heightRange are
// within the bounds space's axes allow, without drawing any candidate
// points. Exported so callers can validate a configuration eagerly before
// committing to it.
func ValidateRanges(space Space, angleRange, radiusRange, heightRange Range) error {
	switch space {
	case HSLSpace:
		if angleRange.Min < -360 || angleRange.Max > 360 {
			return qerrors.Domain("angle_range", "HSL hue must be within [-360,360], got [%v,%v]", angleRange.Min, angleRange.Max)
		}
		if angleRange.Max-angleRange.Min > 360 {
			return qerrors.Domain("angle_range", "HSL hue range must span at most 360 degrees, got [%v,%v]", angleRange.Min, angleRange.Max)
		}
		if radiusRange.Min < 0 || radiusRange.Max > 1 {
			return qerrors.Domain("radius_range", "HSL saturation must be within [0,1], got [%v,%v]", radiusRange.Min, radiusRange.Max)
		}
		if heightRange.Min < 0 || heightRange.Max > 1 {
			return qerrors.Domain("height_range", "HSL lightness must be within [0,1], got [%v,%v]", heightRange.Min, heightRange.Max)
		}
	case LCHabSpace:
		if angleRange.Min < 0 || angleRange.Max > 360 {
			return qerrors.Domain("angle_range", "LCHab hue must be within [0,360], got [%v,%v]", angleRange.Min, angleRange.Max)
		}
		if radiusRange.Min < 0 {
			return qerrors.Domain("radius_range", "LCHab chroma must be >= 0, got [%v,%v]", radiusRange.Min, radiusRange.Max)
		}
		if heightRange.Min < 0 || heightRange.Max > 100 {
			return qerrors.Domain("height_range", "LCHab lightness must be within [0,100], got [%v,%v]", heightRange.Min, heightRange.Max)
		}
	default:
		return qerrors.Domain("space", "unknown candidate space %v", space)
	}
	return nil
}
