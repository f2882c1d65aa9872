package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"

	"github.com/jolars/qualpal-go/internal/qerrors"
)

// RGB is a color in nonlinear sRGB space, channels in [0,1].
type RGB struct {
	R, G, B float64
}

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHex parses "#rgb" or "#rrggbb" (case-insensitive) into an RGB value.
func ParseHex(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, qerrors.Domain("hex", "must match ^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$, got %q", hex)
	}

	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)

	return RGB{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}, nil
}

// Hex renders the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

func clampByte(v float64) uint8 {
	v = math.Round(clamp01(v) * 255)
	return uint8(v)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// String renders the color as "rgb(r, g, b)" with channels scaled to [0,255].
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// ToStdColor converts to the stdlib image/color representation.
func (c RGB) ToStdColor() color.Color {
	return color.RGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 255}
}

// FromStdColor converts any image/color.Color into RGB.
func FromStdColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: float64(r) / 65535.0, G: float64(g) / 65535.0, B: float64(b) / 65535.0}
}

func inverseCompanding(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func forwardCompanding(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

// rgbToXYZMatrix is the fixed sRGB -> XYZ (D65) matrix.
var rgbToXYZMatrix = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// ToXYZ converts sRGB to CIE XYZ under the D65 white point.
func (c RGB) ToXYZ() XYZ {
	r := inverseCompanding(c.R)
	g := inverseCompanding(c.G)
	b := inverseCompanding(c.B)

	m := rgbToXYZMatrix
	return XYZ{
		X: m[0][0]*r + m[0][1]*g + m[0][2]*b,
		Y: m[1][0]*r + m[1][1]*g + m[1][2]*b,
		Z: m[2][0]*r + m[2][1]*g + m[2][2]*b,
	}
}

// RGBFromXYZ converts CIE XYZ (D65) back to clamped sRGB.
func RGBFromXYZ(v XYZ) RGB {
	m := xyzToRGBMatrix
	r := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z
	g := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z
	b := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z

	return RGB{
		R: clamp01(forwardCompanding(r)),
		G: clamp01(forwardCompanding(g)),
		B: clamp01(forwardCompanding(b)),
	}
}

// ToHSL converts sRGB to HSL using the Smith hexcone conversion.
func (c RGB) ToHSL() HSL {
	maxV := math.Max(c.R, math.Max(c.G, c.B))
	minV := math.Min(c.R, math.Min(c.G, c.B))
	l := (maxV + minV) / 2.0
	cDelta := maxV - minV

	var h float64
	switch {
	case cDelta == 0:
		h = 0
	case maxV == c.R:
		h = math.Mod((c.G-c.B)/cDelta, 6.0)
	case maxV == c.G:
		h = (c.B-c.R)/cDelta + 2
	default:
		h = (c.R-c.G)/cDelta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	var s float64
	if l != 0 && l != 1 {
		s = cDelta / (1 - math.Abs(2*l-1))
	}

	return HSL{H: h, S: s, L: l}
}

// RGBFromHSL converts HSL back to sRGB.
func RGBFromHSL(hsl HSL) RGB {
	c := (1 - math.Abs(2*hsl.L-1)) * hsl.S
	hPrime := hsl.H / 60.0
	x := c * (1 - math.Abs(math.Mod(hPrime, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hPrime >= 0 && hPrime < 1:
		r1, g1, b1 = c, x, 0
	case hPrime >= 1 && hPrime < 2:
		r1, g1, b1 = x, c, 0
	case hPrime >= 2 && hPrime < 3:
		r1, g1, b1 = 0, c, x
	case hPrime >= 3 && hPrime < 4:
		r1, g1, b1 = 0, x, c
	case hPrime >= 4 && hPrime < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := hsl.L - c/2.0
	return RGB{R: r1 + m, G: g1 + m, B: b1 + m}
}
