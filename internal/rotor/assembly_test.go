package rotor

import (
	"errors"
	"math"
	"testing"

	"github.com/windtools/gobem/internal/bem"
)

func refConfig() Config {
	return Config{
		HubRadius: 2,
		TipRadius: 6,
		HubChord:  0.3,
		TipChord:  0.1,
		HubTwist:  20,
		TipTwist:  6,
		Blades:    3,
		RPM:       107,
		Elements:  3,
		Flow:      bem.FlowConditions{Rho: 1.225, VInf: 7},
	}
}

// refGeometry is the 3-station rotor from the paper: twist is given
// per station rather than interpolated.
func refGeometry() []bem.ElementGeometry {
	return []bem.ElementGeometry{
		{Radius: 2, Width: 2, Chord: 0.3, TwistDeg: 20, Blades: 3},
		{Radius: 4, Width: 2, Chord: 0.2, TwistDeg: 12, Blades: 3},
		{Radius: 6, Width: 2, Chord: 0.1, TwistDeg: 6, Blades: 3},
	}
}

func TestNewInterpolatesGeometry(t *testing.T) {
	asm, err := New(refConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	geoms := asm.Geometry()
	if len(geoms) != 3 {
		t.Fatalf("station count = %d, want 3", len(geoms))
	}

	wantR := []float64{2, 4, 6}
	wantChord := []float64{0.3, 0.2, 0.1}
	for i, g := range geoms {
		if math.Abs(g.Radius-wantR[i]) > 1e-12 {
			t.Errorf("station %d radius = %v, want %v", i, g.Radius, wantR[i])
		}
		if math.Abs(g.Width-2) > 1e-12 {
			t.Errorf("station %d width = %v, want 2", i, g.Width)
		}
		if math.Abs(g.Chord-wantChord[i]) > 1e-12 {
			t.Errorf("station %d chord = %v, want %v", i, g.Chord, wantChord[i])
		}
		if g.Blades != 3 {
			t.Errorf("station %d blades = %d, want 3", i, g.Blades)
		}
	}
}

func TestEvaluateReferenceRotor(t *testing.T) {
	asm, err := NewFromGeometry(refConfig(), refGeometry())
	if err != nil {
		t.Fatalf("NewFromGeometry: %v", err)
	}

	res, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(res.Failed) != 0 {
		t.Fatalf("failed elements: %v", res.Failed)
	}
	if len(res.Elements) != 3 {
		t.Fatalf("element count = %d, want 3", len(res.Elements))
	}

	for i, st := range res.Elements {
		if !st.Converged {
			t.Errorf("element %d not converged", i)
		}
		if st.A < 0 || st.A >= 1 {
			t.Errorf("element %d: a = %v outside [0, 1)", i, st.A)
		}
	}

	perf := res.Performance
	if perf == nil {
		t.Fatal("no performance record")
	}
	for name, v := range map[string]float64{
		"NetThrust": perf.NetThrust,
		"NetPower":  perf.NetPower,
		"Ct":        perf.Ct,
		"Cp":        perf.Cp,
		"J":         perf.J,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v", name, v)
		}
	}
	if perf.Cp >= bem.BetzLimit {
		t.Errorf("Cp = %v exceeds the Betz limit %v", perf.Cp, bem.BetzLimit)
	}
}

func TestEvaluateIsRepeatable(t *testing.T) {
	asm, err := New(refConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("first Evaluate: %v", err)
	}
	// The second run warm-starts from the first converged values; that
	// is a performance hint and must not move the solution.
	second, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("second Evaluate: %v", err)
	}
	if math.Abs(first.Performance.Cp-second.Performance.Cp) > 1e-4 {
		t.Errorf("Cp moved between evaluations: %v vs %v", first.Performance.Cp, second.Performance.Cp)
	}

	asm.ResetWarmStart()
	third, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("third Evaluate: %v", err)
	}
	if third.Performance.Cp != first.Performance.Cp {
		t.Errorf("cold restart differs from first run: %v vs %v", third.Performance.Cp, first.Performance.Cp)
	}
}

func TestEvaluateProducesFreshStates(t *testing.T) {
	asm, err := New(refConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	second, err := asm.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for i := range first.Elements {
		if first.Elements[i] == second.Elements[i] {
			t.Errorf("element %d state reused between evaluations", i)
		}
	}
}

func TestEvaluateCollectsFailures(t *testing.T) {
	cfg := refConfig()
	cfg.MaxIter = 1
	cfg.Tol = 1e-15

	asm, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := asm.Evaluate()
	if err == nil {
		t.Fatal("expected aggregation failure")
	}
	var aggErr *bem.AggregationError
	if !errors.As(err, &aggErr) {
		t.Fatalf("error type = %T, want *AggregationError", err)
	}
	if len(aggErr.Indices) != 3 {
		t.Errorf("failed indices = %v, want all 3 stations", aggErr.Indices)
	}
	if res == nil || len(res.Failed) != 3 {
		t.Error("result does not carry the failed station list")
	}
	if res != nil && res.Performance != nil {
		t.Error("performance produced despite failures")
	}
}

func TestSetOperatingPoint(t *testing.T) {
	asm, err := New(refConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flow := bem.FlowConditions{Rho: 1.225, VInf: 7}
	if err := asm.SetOperatingPoint(120, flow); err != nil {
		t.Fatalf("SetOperatingPoint: %v", err)
	}
	if got := asm.Config().RPM; got != 120 {
		t.Errorf("RPM = %v, want 120", got)
	}
	if _, err := asm.Evaluate(); err != nil {
		t.Fatalf("Evaluate after retune: %v", err)
	}

	if err := asm.SetOperatingPoint(0, flow); err == nil {
		t.Error("expected error for zero rpm")
	}
	if err := asm.SetOperatingPoint(120, bem.FlowConditions{Rho: 1.225, VInf: -1}); err == nil {
		t.Error("expected error for invalid flow")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero elements", func(c *Config) { c.Elements = 0 }},
		{"hub above tip", func(c *Config) { c.HubRadius, c.TipRadius = 6, 2 }},
		{"zero hub radius", func(c *Config) { c.HubRadius = 0 }},
		{"negative hub chord", func(c *Config) { c.HubChord = -0.3 }},
		{"zero tip chord", func(c *Config) { c.TipChord = 0 }},
		{"no blades", func(c *Config) { c.Blades = 0 }},
		{"zero rpm", func(c *Config) { c.RPM = 0 }},
		{"zero velocity", func(c *Config) { c.Flow.VInf = 0 }},
		{"zero density", func(c *Config) { c.Flow.Rho = 0 }},
	}

	for _, tc := range cases {
		cfg := refConfig()
		tc.mutate(&cfg)
		asm, err := New(cfg)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		var cfgErr *bem.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error type = %T, want *bem.ConfigError", tc.name, err)
		}
		if asm != nil {
			t.Errorf("%s: assembly returned alongside error", tc.name)
		}
	}
}

func TestNewFromGeometryValidation(t *testing.T) {
	cfg := refConfig()

	// station count mismatch
	if _, err := NewFromGeometry(cfg, refGeometry()[:2]); err == nil {
		t.Error("expected error for station count mismatch")
	}

	// non-monotonic radii
	geoms := refGeometry()
	geoms[1].Radius = 6.5
	if _, err := NewFromGeometry(cfg, geoms); err == nil {
		t.Error("expected error for non-monotonic radii")
	}

	// invalid element geometry
	geoms = refGeometry()
	geoms[2].Chord = 0
	if _, err := NewFromGeometry(cfg, geoms); err == nil {
		t.Error("expected error for zero chord station")
	}
}
