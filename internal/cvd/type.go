package cvd

import "github.com/jolars/qualpal-go/internal/qerrors"

// Type identifies a color-vision deficiency.
type Type int

const (
	Protan Type = iota
	Deutan
	Tritan
)

func (t Type) String() string {
	switch t {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	default:
		return "unknown"
	}
}

// ParseType maps a name to a Type. Accepted names: "protan", "deutan",
// "tritan".
func ParseType(name string) (Type, error) {
	switch name {
	case "protan":
		return Protan, nil
	case "deutan":
		return Deutan, nil
	case "tritan":
		return Tritan, nil
	default:
		return 0, qerrors.Domain("cvd", "unknown vision deficiency %q, want one of protan, deutan, tritan", name)
	}
}
