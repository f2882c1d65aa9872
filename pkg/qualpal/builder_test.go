package qualpal

import (
	"testing"
)

func mustParse(t *testing.T, hex string) RGB {
	t.Helper()
	c, err := ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", hex, err)
	}
	return c
}

func TestHexParsing(t *testing.T) {
	if a, b := mustParse(t, "#abc"), mustParse(t, "#aabbcc"); a != b {
		t.Errorf("RGB(#abc) = %+v, want RGB(#aabbcc) = %+v", a, b)
	}
	if got := mustParse(t, "#FF0000").Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q, want #ff0000", got)
	}
	if _, err := ParseHex("#gg0000"); err == nil {
		t.Error("expected domain error for invalid hex")
	}
}

func TestGenerateTrivialFourColorSelection(t *testing.T) {
	colors := []RGB{mustParse(t, "#000000"), mustParse(t, "#ffffff"), mustParse(t, "#ff0000"), mustParse(t, "#00ff00")}

	selected, err := NewBuilder().WithRGBColors(colors).WithMetric(DIN99d).Generate(2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("len(selected) = %d, want 2", len(selected))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	colors := []RGB{
		mustParse(t, "#000000"), mustParse(t, "#ffffff"), mustParse(t, "#ff0000"),
		mustParse(t, "#00ff00"), mustParse(t, "#0000ff"), mustParse(t, "#ffff00"),
	}

	first, err := NewBuilder().WithRGBColors(colors).Generate(3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := NewBuilder().WithRGBColors(colors).Generate(3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("non-deterministic at %d: %v vs %v", i, first, second)
		}
	}
}

func TestGenerateWithBackgroundPrefersFarthest(t *testing.T) {
	bg := mustParse(t, "#ffffff")
	candidates := []RGB{
		mustParse(t, "#fefefe"),
		mustParse(t, "#fcfcfc"),
		mustParse(t, "#808080"),
	}

	selected, err := NewBuilder().WithRGBColors(candidates).WithBackground(bg).Generate(1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(selected) != 1 || selected[0] != candidates[2] {
		t.Errorf("selected = %v, want the color farthest from background (%v)", selected, candidates[2])
	}
}

func TestExtendKeepsAnchorFirst(t *testing.T) {
	anchor := mustParse(t, "#ff0000")

	selected, err := NewBuilder().
		WithColorspace(ColorspaceConfig{
			Kind:        HSL,
			AngleRange:  Range{Min: 0, Max: 360},
			RadiusRange: Range{Min: 0.4, Max: 1},
			HeightRange: Range{Min: 0.3, Max: 0.7},
		}).
		WithColorspaceSize(200).
		Extend([]RGB{anchor}, 3)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("len(selected) = %d, want 3", len(selected))
	}
	if selected[0] != anchor {
		t.Errorf("selected[0] = %v, want anchor %v", selected[0], anchor)
	}
}

func TestGenerateRequiresInputSource(t *testing.T) {
	if _, err := NewBuilder().Generate(2); err == nil {
		t.Error("expected error when no input source is configured")
	}
}

func TestGenerateFromPreset(t *testing.T) {
	selected, err := NewBuilder().WithPreset("base:set1").Generate(3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(selected) != 3 {
		t.Errorf("len(selected) = %d, want 3", len(selected))
	}
}

func TestGenerateUnknownPreset(t *testing.T) {
	if _, err := NewBuilder().WithPreset("nope:nope").Generate(2); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestGenerateNLessThanFixed(t *testing.T) {
	anchor := mustParse(t, "#ff0000")
	colors := []RGB{mustParse(t, "#00ff00"), mustParse(t, "#0000ff")}

	if _, err := NewBuilder().WithRGBColors(colors).Extend([]RGB{anchor}, 0); err == nil {
		t.Error("expected error when n < len(fixed)")
	}
}

func TestGenerateCandidatePoolTooSmall(t *testing.T) {
	colors := []RGB{mustParse(t, "#00ff00")}
	if _, err := NewBuilder().WithRGBColors(colors).Generate(5); err == nil {
		t.Error("expected error when candidate pool is smaller than requested")
	}
}

func TestGenerateWithCVDIsDeterministic(t *testing.T) {
	colors := []RGB{
		mustParse(t, "#000000"), mustParse(t, "#ffffff"), mustParse(t, "#ff0000"),
		mustParse(t, "#00ff00"), mustParse(t, "#0000ff"), mustParse(t, "#ffff00"),
	}
	severities := map[string]float64{"protan": 0.6, "deutan": 0.6}

	first, err := NewBuilder().WithRGBColors(colors).WithCVD(severities).Generate(3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := NewBuilder().WithRGBColors(colors).WithCVD(severities).Generate(3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("non-deterministic with multiple CVD types at %d: %v vs %v", i, first, second)
		}
	}
}

func TestWithHexColorsValidatesEagerly(t *testing.T) {
	b := NewBuilder().WithHexColors([]string{"#ff0000", "#not-a-color"})
	if _, err := b.Generate(1); err == nil {
		t.Error("expected error from invalid hex color")
	}
}

func TestWithColorspaceValidatesEagerly(t *testing.T) {
	b := NewBuilder().WithColorspace(ColorspaceConfig{
		Kind:        HSL,
		AngleRange:  Range{Min: 0, Max: 360},
		RadiusRange: Range{Min: -1, Max: 2},
		HeightRange: Range{Min: 0, Max: 1},
	})
	if _, err := b.Generate(1); err == nil {
		t.Error("expected error from out-of-range HSL saturation")
	}
}

func TestThreadCountSetterGetter(t *testing.T) {
	orig := ThreadCount()
	defer SetThreadCount(orig)

	SetThreadCount(2)
	if ThreadCount() != 2 {
		t.Errorf("ThreadCount() = %d, want 2", ThreadCount())
	}
}

func TestPresetRegistryRoundTrip(t *testing.T) {
	r := NewPresetRegistry()
	r.Register("acme", "brand", []string{"#112233", "#445566"})

	hexColors, err := r.Lookup("acme:brand")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(hexColors) != 2 {
		t.Errorf("len(hexColors) = %d, want 2", len(hexColors))
	}

	if _, err := r.Lookup("acme:missing"); err == nil {
		t.Error("expected error for unknown palette name")
	}
	if _, err := r.Lookup("missing:brand"); err == nil {
		t.Error("expected error for unknown package")
	}
	if _, err := r.Lookup("malformed"); err == nil {
		t.Error("expected error for malformed reference")
	}

	packages := r.Packages()
	if names, ok := packages["acme"]; !ok || len(names) != 1 {
		t.Errorf("Packages() = %v, want acme:[brand]", packages)
	}
}
