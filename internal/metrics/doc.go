// Package metrics implements perceptual color-difference formulas over the
// color spaces in internal/colorspace: DIN99d Euclidean distance, CIE76
// (Euclidean Lab distance), and CIEDE2000.
package metrics
