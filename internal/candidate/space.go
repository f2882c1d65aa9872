package candidate

// Space selects which cylindrical color space a candidate grid is sampled
// in.
type Space int

const (
	HSLSpace Space = iota
	LCHabSpace
)

func (s Space) String() string {
	switch s {
	case HSLSpace:
		return "hsl"
	case LCHabSpace:
		return "lchab"
	default:
		return "unknown"
	}
}

// Range is an inclusive [Min, Max] interval for one cylindrical axis.
type Range struct {
	Min, Max float64
}
