package metrics

import (
	"math"

	"github.com/jolars/qualpal-go/internal/colorspace"
)

func cosd(deg float64) float64 { return math.Cos(deg * math.Pi / 180.0) }
func sind(deg float64) float64 { return math.Sin(deg * math.Pi / 180.0) }

func atan2d(y, x float64) float64 {
	d := math.Atan2(y, x) * 180.0 / math.Pi
	if d < 0 {
		d += 360
	}
	return d
}

func square(x float64) float64 { return x * x }

// CIEDE2000Distance computes the CIEDE2000 color difference between two
// XYZ colors (D65), following Sharma, Wu & Dalal (2005).
func CIEDE2000Distance(a, b colorspace.XYZ) float64 {
	return CIEDE2000DistanceLab(a.ToLab(colorspace.D65), b.ToLab(colorspace.D65))
}

// CIEDE2000DistanceLab computes the CIEDE2000 color difference directly
// from two Lab values, for callers that have already converted a color
// pool into Lab.
func CIEDE2000DistanceLab(la, lb colorspace.Lab) float64 {
	const kL, kC, kH = 1.0, 1.0, 1.0

	c1 := math.Hypot(la.A, la.B)
	c2 := math.Hypot(lb.A, lb.B)
	cBar := (c1 + c2) / 2.0

	g := 0.5 * (1 - math.Sqrt(math.Pow(cBar, 7)/(math.Pow(cBar, 7)+math.Pow(25, 7))))

	a1Prime := la.A * (1 + g)
	a2Prime := lb.A * (1 + g)

	c1Prime := math.Hypot(a1Prime, la.B)
	c2Prime := math.Hypot(a2Prime, lb.B)

	var h1Prime, h2Prime float64
	if a1Prime == 0 && la.B == 0 {
		h1Prime = 0
	} else {
		h1Prime = atan2d(la.B, a1Prime)
	}
	if a2Prime == 0 && lb.B == 0 {
		h2Prime = 0
	} else {
		h2Prime = atan2d(lb.B, a2Prime)
	}

	deltaLPrime := lb.L - la.L
	deltaCPrime := c2Prime - c1Prime

	var deltahPrime float64
	switch {
	case c1Prime == 0 || c2Prime == 0:
		deltahPrime = 0
	case math.Abs(h2Prime-h1Prime) <= 180:
		deltahPrime = h2Prime - h1Prime
	case h2Prime-h1Prime > 180:
		deltahPrime = h2Prime - h1Prime - 360
	default:
		deltahPrime = h2Prime - h1Prime + 360
	}
	deltaHPrime := 2 * math.Sqrt(c1Prime*c2Prime) * sind(deltahPrime/2.0)

	lBarPrime := (la.L + lb.L) / 2.0
	cBarPrime := (c1Prime + c2Prime) / 2.0

	var hBarPrime float64
	switch {
	case c1Prime == 0 || c2Prime == 0:
		hBarPrime = h1Prime + h2Prime
	case math.Abs(h1Prime-h2Prime) <= 180:
		hBarPrime = (h1Prime + h2Prime) / 2.0
	case h1Prime+h2Prime < 360:
		hBarPrime = (h1Prime+h2Prime)/2.0 + 180
	default:
		hBarPrime = (h1Prime+h2Prime)/2.0 - 180
	}

	t := 1 - 0.17*cosd(hBarPrime-30) + 0.24*cosd(2*hBarPrime) +
		0.32*cosd(3*hBarPrime+6) - 0.20*cosd(4*hBarPrime-63)

	deltaTheta := 30 * math.Exp(-square((hBarPrime-275)/25))

	rC := 2 * math.Sqrt(math.Pow(cBarPrime, 7)/(math.Pow(cBarPrime, 7)+math.Pow(25, 7)))
	sL := 1 + (0.015*square(lBarPrime-50))/math.Sqrt(20+square(lBarPrime-50))
	sC := 1 + 0.045*cBarPrime
	sH := 1 + 0.015*cBarPrime*t
	rT := -sind(2*deltaTheta) * rC

	termL := deltaLPrime / (kL * sL)
	termC := deltaCPrime / (kC * sC)
	termH := deltaHPrime / (kH * sH)

	return math.Sqrt(square(termL) + square(termC) + square(termH) + rT*termC*termH)
}
