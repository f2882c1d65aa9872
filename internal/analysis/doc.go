// Package analysis computes per-vision-deficiency palette diagnostics: a
// full pairwise distance matrix, each color's nearest-neighbor distance,
// and (if a background is set) the smallest distance from any color to that
// background.
package analysis
