package rotor

import (
	"math"
	"testing"
)

func TestBuilderDefaultsToUniform(t *testing.T) {
	cfg := refConfig()

	fromNew, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fromBuilder, err := Builder{Config: cfg}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	a, b := fromNew.Geometry(), fromBuilder.Geometry()
	if len(a) != len(b) {
		t.Fatalf("station counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i].Radius-b[i].Radius) > 1e-12 ||
			math.Abs(a[i].Chord-b[i].Chord) > 1e-12 ||
			math.Abs(a[i].TwistDeg-b[i].TwistDeg) > 1e-12 ||
			math.Abs(a[i].Width-b[i].Width) > 1e-12 {
			t.Errorf("station %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuilderCosineSpacing(t *testing.T) {
	cfg := refConfig()
	cfg.Elements = 9

	asm, err := Builder{Config: cfg, Spacing: Cosine}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	geoms := asm.Geometry()
	if len(geoms) != 9 {
		t.Fatalf("station count = %d, want 9", len(geoms))
	}
	for i, g := range geoms {
		if g.Width <= 0 {
			t.Errorf("station %d width = %v", i, g.Width)
		}
		if i > 0 && g.Radius <= geoms[i-1].Radius {
			t.Errorf("radii not increasing at station %d", i)
		}
	}
	if geoms[0].Radius != cfg.HubRadius || geoms[8].Radius != cfg.TipRadius {
		t.Errorf("endpoints = %v, %v; want %v, %v",
			geoms[0].Radius, geoms[8].Radius, cfg.HubRadius, cfg.TipRadius)
	}
	// chord interpolates hub to tip along the generated stations
	if math.Abs(geoms[0].Chord-cfg.HubChord) > 1e-12 || math.Abs(geoms[8].Chord-cfg.TipChord) > 1e-12 {
		t.Errorf("chord endpoints = %v, %v; want %v, %v",
			geoms[0].Chord, geoms[8].Chord, cfg.HubChord, cfg.TipChord)
	}
}

func TestBuilderSingleElement(t *testing.T) {
	cfg := refConfig()
	cfg.Elements = 1

	asm, err := Builder{Config: cfg}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	geoms := asm.Geometry()
	if len(geoms) != 1 {
		t.Fatalf("station count = %d, want 1", len(geoms))
	}
	if math.Abs(geoms[0].Radius-4) > 1e-12 {
		t.Errorf("single station radius = %v, want midspan 4", geoms[0].Radius)
	}
	if math.Abs(geoms[0].Width-4) > 1e-12 {
		t.Errorf("single station width = %v, want full span 4", geoms[0].Width)
	}

	if _, err := asm.Evaluate(); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := refConfig()
	cfg.Elements = 0
	if _, err := (Builder{Config: cfg}).Build(); err == nil {
		t.Error("expected error for zero elements")
	}

	cfg = refConfig()
	cfg.HubRadius, cfg.TipRadius = 6, 2
	if _, err := (Builder{Config: cfg}).Build(); err == nil {
		t.Error("expected error for hub above tip")
	}
}
