package candidate

import "testing"

func TestHaltonSequenceKnownValues(t *testing.T) {
	// Base 2: 0.5, 0.25, 0.75, 0.125, ...
	tests := []struct {
		index int
		base  int
		want  float64
	}{
		{1, 2, 0.5},
		{2, 2, 0.25},
		{3, 2, 0.75},
		{4, 2, 0.125},
		{1, 3, 1.0 / 3.0},
		{2, 3, 2.0 / 3.0},
		{3, 3, 1.0 / 9.0},
	}
	for _, tt := range tests {
		if got := haltonSequence(tt.index, tt.base); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("haltonSequence(%d, %d) = %v, want %v", tt.index, tt.base, got, tt.want)
		}
	}
}

func TestHaltonSequenceBounded(t *testing.T) {
	for i := 1; i <= 500; i++ {
		for _, base := range []int{2, 3, 5} {
			v := haltonSequence(i, base)
			if v < 0 || v >= 1 {
				t.Fatalf("haltonSequence(%d, %d) = %v out of [0,1)", i, base, v)
			}
		}
	}
}

func TestGenerateHSLCount(t *testing.T) {
	colors, err := Generate(50, HSLSpace, Range{Min: 0, Max: 360}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(colors) != 50 {
		t.Errorf("len(colors) = %d, want 50", len(colors))
	}
	for _, c := range colors {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Errorf("generated color out of range: %+v", c)
		}
	}
}

func TestGenerateLCHabCount(t *testing.T) {
	colors, err := Generate(30, LCHabSpace, Range{Min: 0, Max: 360}, Range{Min: 0, Max: 50}, Range{Min: 20, Max: 80})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(colors) != 30 {
		t.Errorf("len(colors) = %d, want 30", len(colors))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(20, HSLSpace, Range{Min: 0, Max: 360}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(20, HSLSpace, Range{Min: 0, Max: 360}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Generate is not deterministic at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateInvalidN(t *testing.T) {
	if _, err := Generate(0, HSLSpace, Range{}, Range{}, Range{}); err == nil {
		t.Error("expected error for n=0")
	}
}

func TestGenerateInvalidHSLRanges(t *testing.T) {
	tests := []struct {
		name   string
		angle  Range
		radius Range
		height Range
	}{
		{"hue out of bounds", Range{Min: -400, Max: 0}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1}},
		{"hue span too wide", Range{Min: -10, Max: 360}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1}},
		{"saturation out of bounds", Range{Min: 0, Max: 360}, Range{Min: -0.1, Max: 1}, Range{Min: 0, Max: 1}},
		{"lightness out of bounds", Range{Min: 0, Max: 360}, Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(5, HSLSpace, tt.angle, tt.radius, tt.height); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGenerateInvalidLCHabRanges(t *testing.T) {
	tests := []struct {
		name   string
		angle  Range
		radius Range
		height Range
	}{
		{"hue negative", Range{Min: -10, Max: 100}, Range{Min: 0, Max: 50}, Range{Min: 0, Max: 100}},
		{"chroma negative", Range{Min: 0, Max: 360}, Range{Min: -5, Max: 50}, Range{Min: 0, Max: 100}},
		{"lightness out of bounds", Range{Min: 0, Max: 360}, Range{Min: 0, Max: 50}, Range{Min: 0, Max: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(5, LCHabSpace, tt.angle, tt.radius, tt.height); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGenerateNegativeHueWraps(t *testing.T) {
	colors, err := Generate(10, HSLSpace, Range{Min: -360, Max: 0}, Range{Min: 0.5, Max: 0.5}, Range{Min: 0.5, Max: 0.5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(colors) != 10 {
		t.Fatalf("len(colors) = %d, want 10", len(colors))
	}
}
