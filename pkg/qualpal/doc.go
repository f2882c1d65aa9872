// Package qualpal generates and analyzes qualitatively distinct color
// palettes: given a candidate pool (an explicit list, a named preset, or a
// procedurally sampled region of a perceptual color space), it selects n
// colors that maximize mutual perceptual distinctness, optionally
// accounting for simulated color-vision deficiencies, a background color,
// and a set of pre-existing anchor colors to extend.
package qualpal
