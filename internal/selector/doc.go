// Package selector implements the farthest-points selection algorithm: a
// deterministic swap-based local search that picks n mutually distinct
// colors from a candidate pool, optionally keeping a prefix of fixed
// anchors and accounting for a background color.
package selector
