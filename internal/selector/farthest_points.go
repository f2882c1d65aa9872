package selector

import (
	"fmt"
	"math"
	"sort"

	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/distmatrix"
	"github.com/jolars/qualpal-go/internal/metrics"
	"github.com/jolars/qualpal-go/internal/qerrors"
)

// FarthestPoints selects n indices from colors that maximize mutual
// perceptual distinctness.
//
// colors is laid out as [fixed anchors (nFixed), candidates, optional
// background (1 if hasBg)]. The first nFixed indices are frozen in place;
// the result always keeps them at the front in their given order.
func FarthestPoints(n int, colors []colorspace.XYZ, metricType metrics.Type, hasBg bool, nFixed int, maxMemoryGB float64) ([]int, error) {
	if n < nFixed {
		return nil, qerrors.Domain("n", "must be >= n_fixed (%d), got %d", nFixed, n)
	}

	total := len(colors)
	bgCount := 0
	if hasBg {
		bgCount = 1
	}
	candidateCount := total - nFixed - bgCount
	if candidateCount < 0 {
		return nil, qerrors.Domain("colors", "pool too small for n_fixed=%d and background=%v", nFixed, hasBg)
	}
	if n-nFixed > candidateCount {
		return nil, qerrors.Domain("n", "requires %d candidates but only %d available", n-nFixed, candidateCount)
	}

	if n == nFixed {
		selected := make([]int, n)
		for i := range selected {
			selected[i] = i
		}
		return selected, nil
	}

	d, err := distmatrix.BuildFromXYZ(colors, metricType, maxMemoryGB)
	if err != nil {
		return nil, fmt.Errorf("select farthest points: %w", err)
	}

	bgIdx := -1
	if hasBg {
		bgIdx = nFixed + candidateCount
	}

	selected := make([]int, n)
	for i := range selected {
		selected[i] = i
	}

	pool := make([]int, 0, candidateCount-(n-nFixed))
	for i := n; i < nFixed+candidateCount; i++ {
		pool = append(pool, i)
	}

	for changed := true; changed; {
		changed = false
		for i := nFixed; i < n; i++ {
			dOld := minDistanceTo(d, selected, i, selected[i], bgIdx)

			bestK := -1
			bestD := dOld
			for k, cand := range pool {
				dk := minDistanceTo(d, selected, i, cand, bgIdx)
				if dk > bestD {
					bestD = dk
					bestK = k
				}
			}

			if bestK >= 0 {
				pool[bestK], selected[i] = selected[i], pool[bestK]
				changed = true
			}
		}
	}

	sortNonAnchorSuffix(d, selected, nFixed)

	return selected, nil
}

// minDistanceTo computes the minimum distance from candidate to every
// currently selected element other than the one at position skipPos,
// extended with the distance to the background index if present.
func minDistanceTo(d *distmatrix.Matrix, selected []int, skipPos, candidate, bgIdx int) float64 {
	min := math.Inf(1)
	for j, other := range selected {
		if j == skipPos {
			continue
		}
		if v := d.At(candidate, other); v < min {
			min = v
		}
	}
	if bgIdx >= 0 {
		if v := d.At(candidate, bgIdx); v < min {
			min = v
		}
	}
	return min
}

// sortNonAnchorSuffix stable-sorts selected[nFixed:] in descending order
// of each element's min-distance to the other non-anchor selections,
// leaving the anchor prefix untouched.
func sortNonAnchorSuffix(d *distmatrix.Matrix, selected []int, nFixed int) {
	suffix := selected[nFixed:]
	if len(suffix) < 2 {
		return
	}

	scores := make([]float64, len(suffix))
	for i, idx := range suffix {
		min := math.Inf(1)
		for j, other := range suffix {
			if i == j {
				continue
			}
			if v := d.At(idx, other); v < min {
				min = v
			}
		}
		scores[i] = min
	}

	order := make([]int, len(suffix))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	sorted := make([]int, len(suffix))
	for i, o := range order {
		sorted[i] = suffix[o]
	}
	copy(suffix, sorted)
}
