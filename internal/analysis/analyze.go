package analysis

import (
	"fmt"
	"math"

	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/cvd"
	"github.com/jolars/qualpal-go/internal/distmatrix"
	"github.com/jolars/qualpal-go/internal/metrics"
	"github.com/jolars/qualpal-go/internal/qerrors"
)

// PaletteAnalysis holds the diagnostics for one vision key: the full
// pairwise distance matrix, each color's nearest-neighbor distance, and
// (if a background was supplied) the smallest distance from any color to it.
type PaletteAnalysis struct {
	DiffMatrix    *distmatrix.Matrix
	MinDistances  []float64
	HasBackground bool
	BgMinDistance float64
}

// AnalyzePalette evaluates colors under every vision key in cvdMap plus an
// always-present "normal" key at severity 0, as required by the CVD
// simulation contract.
func AnalyzePalette(colors []colorspace.RGB, metricType metrics.Type, cvdMap map[string]float64, bg *colorspace.RGB, maxMemoryGB float64) (map[string]PaletteAnalysis, error) {
	if len(colors) == 0 {
		return nil, qerrors.Domain("colors", "must contain at least one color")
	}

	visionKeys := make(map[string]float64, len(cvdMap)+1)
	for k, v := range cvdMap {
		visionKeys[k] = v
	}
	if _, ok := visionKeys["normal"]; !ok {
		visionKeys["normal"] = 0
	}

	result := make(map[string]PaletteAnalysis, len(visionKeys))

	for key, severity := range visionKeys {
		analysis, err := analyzeForVision(colors, metricType, key, severity, bg, maxMemoryGB)
		if err != nil {
			return nil, fmt.Errorf("analyze palette for vision %q: %w", key, err)
		}
		result[key] = analysis
	}

	return result, nil
}

func analyzeForVision(colors []colorspace.RGB, metricType metrics.Type, key string, severity float64, bg *colorspace.RGB, maxMemoryGB float64) (PaletteAnalysis, error) {
	deficiency := cvd.Protan
	if key != "normal" {
		parsed, err := cvd.ParseType(key)
		if err != nil {
			return PaletteAnalysis{}, fmt.Errorf("parse vision key %q: %w", key, err)
		}
		deficiency = parsed
	}

	simulated := make([]colorspace.XYZ, len(colors))
	for i, c := range colors {
		mod, err := cvd.Simulate(c, deficiency, severity)
		if err != nil {
			return PaletteAnalysis{}, fmt.Errorf("simulate %q at index %d: %w", key, i, err)
		}
		simulated[i] = mod.ToXYZ()
	}

	diff, err := distmatrix.BuildFromXYZ(simulated, metricType, maxMemoryGB)
	if err != nil {
		return PaletteAnalysis{}, fmt.Errorf("build difference matrix for %q: %w", key, err)
	}

	minDistances := make([]float64, len(colors))
	for i := range colors {
		if len(colors) == 1 {
			minDistances[i] = math.NaN()
			continue
		}
		min := math.Inf(1)
		for j := range colors {
			if i == j {
				continue
			}
			if v := diff.At(i, j); v < min {
				min = v
			}
		}
		minDistances[i] = min
	}

	analysis := PaletteAnalysis{
		DiffMatrix:   diff,
		MinDistances: minDistances,
	}

	if bg != nil {
		bgMod, err := cvd.Simulate(*bg, deficiency, severity)
		if err != nil {
			return PaletteAnalysis{}, fmt.Errorf("simulate background for %q: %w", key, err)
		}
		bgXYZ := bgMod.ToXYZ()

		min := math.Inf(1)
		for _, c := range simulated {
			if d := metrics.Distance(bgXYZ, c, metricType); d < min {
				min = d
			}
		}
		analysis.HasBackground = true
		analysis.BgMinDistance = min
	}

	return analysis, nil
}
