package distmatrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/metrics"
	"github.com/jolars/qualpal-go/internal/qerrors"
)

// Build fills an N x N distance matrix for an arbitrary color
// representation T, given a symmetric distance function. The outer row
// loop is split across the process-wide worker pool (see Workers);
// distance must be a pure function of its two arguments, since rows are
// computed concurrently and written to disjoint matrix cells.
func Build[T any](colors []T, distance func(a, b T) float64, maxMemoryGB float64) (*Matrix, error) {
	n := len(colors)
	if err := checkMemoryBudget(n, maxMemoryGB); err != nil {
		return nil, fmt.Errorf("build distance matrix: %w", err)
	}

	m := NewMatrix(n)
	if n <= 1 {
		return m, nil
	}

	workers := Workers()
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					m.Set(i, j, distance(colors[i], colors[j]))
				}
			}
			return nil
		})
	}

	// errgroup.Group.Go never returns a non-nil error here; the closures
	// are infallible. Wait only to block until all rows are filled.
	_ = g.Wait()

	return m, nil
}

// BuildFromXYZ builds a distance matrix from a pool of XYZ colors and a
// runtime-selected metric, converting the pool once into the metric's
// native space (DIN99d or Lab) before the pairwise fill.
func BuildFromXYZ(colors []colorspace.XYZ, metricType metrics.Type, maxMemoryGB float64) (*Matrix, error) {
	switch metricType {
	case metrics.CIE76Type:
		native := make([]colorspace.Lab, len(colors))
		for i, c := range colors {
			native[i] = c.ToLab(colorspace.D65)
		}
		return Build(native, labCIE76Distance, maxMemoryGB)
	case metrics.CIEDE2000Type:
		native := make([]colorspace.Lab, len(colors))
		for i, c := range colors {
			native[i] = c.ToLab(colorspace.D65)
		}
		return Build(native, labCIEDE2000Distance, maxMemoryGB)
	default:
		native := make([]colorspace.DIN99d, len(colors))
		for i, c := range colors {
			native[i] = c.ToDIN99d()
		}
		return Build(native, din99dDistance, maxMemoryGB)
	}
}

func labCIE76Distance(a, b colorspace.Lab) float64 {
	return metrics.CIE76DistanceLab(a, b)
}

func labCIEDE2000Distance(a, b colorspace.Lab) float64 {
	return metrics.CIEDE2000DistanceLab(a, b)
}

func din99dDistance(a, b colorspace.DIN99d) float64 {
	return metrics.DIN99dDistanceNative(a, b, metrics.DefaultDIN99dOptions)
}

func checkMemoryBudget(n int, maxMemoryGB float64) error {
	if maxMemoryGB <= 0 {
		return qerrors.Domain("max_memory_gb", "must be positive, got %v", maxMemoryGB)
	}
	estimated := EstimateBytes(n)
	allowed := uint64(maxMemoryGB * (1 << 30))
	if estimated > allowed {
		return qerrors.Resource(estimated, allowed, "distance matrix exceeds memory budget")
	}
	return nil
}
