package qualpal

import (
	"github.com/jolars/qualpal-go/internal/analysis"
	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/distmatrix"
)

// PaletteAnalysis holds per-vision-key diagnostics for a palette: the full
// pairwise distance matrix, each color's nearest-neighbor distance, and
// (if a background was supplied) the smallest distance from any color to it.
type PaletteAnalysis = analysis.PaletteAnalysis

// Analyze evaluates colors under every vision key in cvdMap plus an
// always-present "normal" key at severity 0.
func Analyze(colors []RGB, metric MetricType, cvdMap map[string]float64, bg *RGB, maxMemoryGB float64) (map[string]PaletteAnalysis, error) {
	return analysis.AnalyzePalette(colors, metric, cvdMap, bg, maxMemoryGB)
}

// DifferenceMatrix is the pairwise distance matrix produced by Analyze and
// DifferenceMatrixOf.
type DifferenceMatrix = distmatrix.Matrix

// DifferenceMatrixOf builds a standalone N x N distance matrix for colors
// under the given metric, without any CVD simulation.
func DifferenceMatrixOf(colors []RGB, metric MetricType, maxMemoryGB float64) (*DifferenceMatrix, error) {
	xyz := make([]colorspace.XYZ, len(colors))
	for i, c := range colors {
		xyz[i] = c.ToXYZ()
	}
	return distmatrix.BuildFromXYZ(xyz, metric, maxMemoryGB)
}
