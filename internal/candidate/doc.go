// Package candidate generates candidate color pools by sampling a
// cylindrical color-space region (HSL or LCHab) along a Halton
// low-discrepancy sequence, for use as the search space of the
// farthest-points selector.
package candidate
