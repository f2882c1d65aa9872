// Package distmatrix builds symmetric pairwise color-distance matrices,
// filling the outer row loop across a process-wide worker pool.
package distmatrix
