package metrics

import "github.com/jolars/qualpal-go/internal/qerrors"

// Type identifies a perceptual color-difference metric.
type Type int

const (
	DIN99dType Type = iota
	CIE76Type
	CIEDE2000Type
)

func (t Type) String() string {
	switch t {
	case DIN99dType:
		return "din99d"
	case CIE76Type:
		return "cie76"
	case CIEDE2000Type:
		return "ciede2000"
	default:
		return "unknown"
	}
}

// ParseType maps a metric name to a Type. Accepted names: "din99d", "cie76",
// "ciede2000".
func ParseType(name string) (Type, error) {
	switch name {
	case "din99d":
		return DIN99dType, nil
	case "cie76":
		return CIE76Type, nil
	case "ciede2000":
		return CIEDE2000Type, nil
	default:
		return 0, qerrors.Domain("metric", "unknown metric %q, want one of din99d, cie76, ciede2000", name)
	}
}
