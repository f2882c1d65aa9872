package qualpal

import (
	"fmt"
	"sort"

	"github.com/jolars/qualpal-go/internal/candidate"
	"github.com/jolars/qualpal-go/internal/colorspace"
	"github.com/jolars/qualpal-go/internal/cvd"
	"github.com/jolars/qualpal-go/internal/qerrors"
	"github.com/jolars/qualpal-go/internal/selector"
)

type inputMode int

const (
	inputUnset inputMode = iota
	inputRGBList
	inputHexList
	inputPreset
	inputColorspace
)

// Builder is the pipeline orchestrator: a staged configuration object that
// sequences CVD simulation, color-space conversion, distance-matrix
// construction, and farthest-points selection under a single input
// source.
type Builder struct {
	mode inputMode

	rgbColors  []RGB
	presetRef  string
	colorspace ColorspaceConfig
	colorCount int
	presets    *PresetRegistry

	cvdMap      map[string]float64
	background  *RGB
	metric      MetricType
	maxMemoryGB float64

	err error
}

// NewBuilder returns a Builder with the documented defaults: DIN99d
// metric, a 1 GiB memory budget, and 1000 candidate-grid points.
func NewBuilder() *Builder {
	return &Builder{
		metric:      DIN99d,
		maxMemoryGB: 1.0,
		colorCount:  1000,
		presets:     DefaultPresets,
		cvdMap:      map[string]float64{},
	}
}

// WithPresetRegistry overrides the preset registry used by WithPreset.
func (b *Builder) WithPresetRegistry(r *PresetRegistry) *Builder {
	b.presets = r
	return b
}

// WithRGBColors sets the input source to an explicit list of RGB colors.
func (b *Builder) WithRGBColors(colors []RGB) *Builder {
	b.mode = inputRGBList
	b.rgbColors = colors
	return b
}

// WithHexColors sets the input source to an explicit list of hex colors,
// parsing and validating every entry immediately.
func (b *Builder) WithHexColors(hexColors []string) *Builder {
	colors := make([]RGB, len(hexColors))
	for i, hex := range hexColors {
		c, err := colorspace.ParseHex(hex)
		if err != nil {
			b.err = fmt.Errorf("parse hex color %q: %w", hex, err)
			return b
		}
		colors[i] = c
	}
	b.mode = inputHexList
	b.rgbColors = colors
	return b
}

// WithPreset sets the input source to a named preset, resolved at
// generate/extend time as "package:name".
func (b *Builder) WithPreset(ref string) *Builder {
	b.mode = inputPreset
	b.presetRef = ref
	return b
}

// WithColorspace sets the input source to a procedurally sampled
// cylindrical color-space region, validating the ranges immediately.
func (b *Builder) WithColorspace(cfg ColorspaceConfig) *Builder {
	if err := candidate.ValidateRanges(cfg.Kind, cfg.AngleRange, cfg.RadiusRange, cfg.HeightRange); err != nil {
		b.err = fmt.Errorf("validate colorspace config: %w", err)
		return b
	}
	b.mode = inputColorspace
	b.colorspace = cfg
	return b
}

// WithColorspaceSize sets the number of Halton-sampled points drawn for
// COLORSPACE mode (default 1000).
func (b *Builder) WithColorspaceSize(n int) *Builder {
	if n <= 0 {
		b.err = qerrors.Domain("n_points", "must be positive, got %d", n)
		return b
	}
	b.colorCount = n
	return b
}

// WithCVD sets the CVD severity map, overwriting any previous value.
func (b *Builder) WithCVD(severities map[string]float64) *Builder {
	b.cvdMap = severities
	return b
}

// WithBackground sets a background color that selected colors must also
// remain distinguishable against.
func (b *Builder) WithBackground(bg RGB) *Builder {
	b.background = &bg
	return b
}

// WithMetric sets the perceptual distance metric (default DIN99d).
func (b *Builder) WithMetric(m MetricType) *Builder {
	b.metric = m
	return b
}

// WithMemoryLimitGB sets the distance-matrix memory budget in GiB
// (default 1.0).
func (b *Builder) WithMemoryLimitGB(gb float64) *Builder {
	if gb <= 0 {
		b.err = qerrors.Domain("max_memory_gb", "must be positive, got %v", gb)
		return b
	}
	b.maxMemoryGB = gb
	return b
}

// Generate materializes the configured input pool and selects n mutually
// distinct colors from it.
func (b *Builder) Generate(n int) ([]RGB, error) {
	return b.selectColors(n, nil)
}

// Extend selects n colors total, keeping every color in anchors fixed and
// filling the remainder from the configured input pool.
func (b *Builder) Extend(anchors []RGB, n int) ([]RGB, error) {
	return b.selectColors(n, anchors)
}

func (b *Builder) selectColors(n int, fixed []RGB) ([]RGB, error) {
	if b.err != nil {
		return nil, b.err
	}

	pool, err := b.materializePool()
	if err != nil {
		return nil, fmt.Errorf("materialize candidate pool: %w", err)
	}

	if n < len(fixed) {
		return nil, qerrors.Domain("n", "must be >= len(fixed) (%d), got %d", len(fixed), n)
	}
	if len(pool) < n-len(fixed) {
		return nil, qerrors.Domain("n", "candidate pool (%d) smaller than needed (%d)", len(pool), n-len(fixed))
	}

	allRGB := make([]RGB, 0, len(fixed)+len(pool)+1)
	allRGB = append(allRGB, fixed...)
	allRGB = append(allRGB, pool...)
	hasBg := b.background != nil
	if hasBg {
		allRGB = append(allRGB, *b.background)
	}

	allMod := make([]RGB, len(allRGB))
	copy(allMod, allRGB)

	// CVD matrices don't commute, so the chain must apply in a fixed order
	// regardless of map iteration order.
	keys := make([]string, 0, len(b.cvdMap))
	for key := range b.cvdMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		severity := b.cvdMap[key]
		if severity <= 0 {
			continue
		}
		deficiency, err := cvd.ParseType(key)
		if err != nil {
			return nil, fmt.Errorf("parse CVD type %q: %w", key, err)
		}
		for i, c := range allMod {
			sim, err := cvd.Simulate(c, deficiency, severity)
			if err != nil {
				return nil, fmt.Errorf("simulate CVD %q at index %d: %w", key, i, err)
			}
			allMod[i] = sim
		}
	}

	xyz := make([]colorspace.XYZ, len(allMod))
	for i, c := range allMod {
		xyz[i] = c.ToXYZ()
	}

	indices, err := selector.FarthestPoints(n, xyz, b.metric, hasBg, len(fixed), b.maxMemoryGB)
	if err != nil {
		return nil, fmt.Errorf("select farthest points: %w", err)
	}

	result := make([]RGB, len(indices))
	for i, idx := range indices {
		result[i] = allRGB[idx]
	}
	return result, nil
}

func (b *Builder) materializePool() ([]RGB, error) {
	switch b.mode {
	case inputRGBList, inputHexList:
		return b.rgbColors, nil
	case inputPreset:
		hexColors, err := b.presets.Lookup(b.presetRef)
		if err != nil {
			return nil, fmt.Errorf("look up preset %q: %w", b.presetRef, err)
		}
		colors := make([]RGB, len(hexColors))
		for i, hex := range hexColors {
			c, err := colorspace.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("parse preset color %q: %w", hex, err)
			}
			colors[i] = c
		}
		return colors, nil
	case inputColorspace:
		colors, err := candidate.Generate(b.colorCount, b.colorspace.Kind, b.colorspace.AngleRange, b.colorspace.RadiusRange, b.colorspace.HeightRange)
		if err != nil {
			return nil, fmt.Errorf("generate candidate grid: %w", err)
		}
		return colors, nil
	default:
		return nil, qerrors.Domain("input", "no input source configured: call WithRGBColors, WithHexColors, WithPreset, or WithColorspace")
	}
}
