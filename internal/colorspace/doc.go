// Package colorspace implements the color-space algebra: RGB, HSL, XYZ, Lab,
// LCHab, and DIN99d value types and the conversions between them.
//
// Every value type is an immutable triple of float64s. Conversions route
// through XYZ as the hub (RGB and HSL never convert to Lab/LCHab/DIN99d
// directly) so the conversion graph stays a star rather than growing a
// constructor for every ordered pair of spaces.
package colorspace
