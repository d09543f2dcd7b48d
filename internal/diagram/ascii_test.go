package diagram

import (
	"math"
	"strings"
	"testing"
)

func testData() SpanwiseData {
	return SpanwiseData{
		Radii:   []float64{2, 4, 6},
		Chords:  []float64{0.3, 0.2, 0.1},
		DeltaCt: []float64{0.01, 0.02, 0.03},
		DeltaCp: []float64{0.05, 0.10, 0.07},
	}
}

func TestDrawSpanwiseLoading(t *testing.T) {
	out := DrawSpanwiseLoading(testData())
	if out == "" {
		t.Fatal("empty chart")
	}
	if !strings.Contains(out, "hub → tip") {
		t.Error("chart missing caption")
	}
}

func TestDrawSpanwiseLoadingTooFewStations(t *testing.T) {
	data := SpanwiseData{DeltaCp: []float64{0.1}}
	if out := DrawSpanwiseLoading(data); out != "" {
		t.Errorf("expected empty chart, got %q", out)
	}
}

func TestDrawBladePlanform(t *testing.T) {
	out := DrawBladePlanform(testData())
	if out == "" {
		t.Fatal("empty planform")
	}
	if !strings.Contains(out, "hub r=2.00 m") || !strings.Contains(out, "tip r=6.00 m") {
		t.Error("planform missing radius labels")
	}
	if !strings.Contains(out, "max chord = 0.300 m") {
		t.Error("planform missing chord label")
	}
}

func TestChordAtInterpolatesAndClamps(t *testing.T) {
	radii := []float64{2, 4, 6}
	chords := []float64{0.3, 0.2, 0.1}

	if got := chordAt(radii, chords, 3); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("chordAt(3) = %v, want 0.25", got)
	}
	if got := chordAt(radii, chords, 1); got != 0.3 {
		t.Errorf("chordAt below range = %v, want 0.3", got)
	}
	if got := chordAt(radii, chords, 7); got != 0.1 {
		t.Errorf("chordAt above range = %v, want 0.1", got)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TITLE", []string{"line one", "a longer line two"})
	if !strings.Contains(out, "TITLE") || !strings.Contains(out, "a longer line two") {
		t.Error("summary box missing content")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("box has %d lines, want 5", len(lines))
	}
}
