package cvd

import (
	"math"

	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/qerrors"
)

// fullSeverityMatrix is the Machado/Oliveira/Fernandes (2009) linear-RGB
// transform at severity 1.0 (complete dichromacy) for each deficiency.
// Rows operate directly on linear (companded-inverse) sRGB channels.
var fullSeverityMatrix = map[Type][3][3]float64{
	Protan: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deutan: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritan: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
}

var identityMatrix = [3][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// severityMatrix linearly interpolates each matrix element between the
// identity (severity 0) and the full Machado matrix (severity 1), which
// satisfies the required identity-at-0 / full-simulation-at-1 contract.
func severityMatrix(t Type, severity float64) [3][3]float64 {
	full := fullSeverityMatrix[t]

	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = identityMatrix[i][j] + severity*(full[i][j]-identityMatrix[i][j])
		}
	}
	return m
}

// Simulate applies the CVD simulation for the given deficiency type and
// severity to an sRGB color, operating in linear RGB and re-companding the
// result. A severity outside [0,1] is rejected with a DomainError.
func Simulate(c colorspace.RGB, t Type, severity float64) (colorspace.RGB, error) {
	if severity < 0 || severity > 1 {
		return colorspace.RGB{}, qerrors.Domain("severity", "must be in [0,1], got %v", severity)
	}
	if severity == 0 {
		return c, nil
	}

	r := inverseCompand(c.R)
	g := inverseCompand(c.G)
	b := inverseCompand(c.B)

	m := severityMatrix(t, severity)

	lr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	lg := m[1][0]*r + m[1][1]*g + m[1][2]*b
	lb := m[2][0]*r + m[2][1]*g + m[2][2]*b

	return colorspace.RGB{
		R: clamp01(forwardCompand(lr)),
		G: clamp01(forwardCompand(lg)),
		B: clamp01(forwardCompand(lb)),
	}, nil
}

func inverseCompand(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func forwardCompand(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
