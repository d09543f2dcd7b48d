package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SpanwiseData holds per-station results for drawing rotor diagrams.
// Slices are indexed hub to tip and must share a length.
type SpanwiseData struct {
	Radii   []float64 // station radius (m)
	Chords  []float64 // station chord (m)
	DeltaCt []float64
	DeltaCp []float64
}

// DrawSpanwiseLoading renders the element power contributions as a
// terminal chart, hub on the left.
func DrawSpanwiseLoading(data SpanwiseData) string {
	if len(data.DeltaCp) < 2 {
		return ""
	}
	graph := asciigraph.Plot(data.DeltaCp,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("ΔCp per station, hub → tip"))
	return "\n" + graph + "\n"
}

// DrawSweepCurve renders a performance sweep (e.g. Cp over tip speed
// ratio) as a terminal chart.
func DrawSweepCurve(values []float64, caption string) string {
	if len(values) < 2 {
		return ""
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(caption))
	return "\n" + graph + "\n"
}

// DrawBladePlanform sketches the blade outline: chord versus radius,
// hub on the left, chord centered on the pitch axis.
func DrawBladePlanform(data SpanwiseData) string {
	n := len(data.Radii)
	if n < 2 || len(data.Chords) != n {
		return ""
	}

	widthChars := 58
	halfRows := 5

	maxChord := data.Chords[0]
	for _, c := range data.Chords {
		if c > maxChord {
			maxChord = c
		}
	}
	if maxChord <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BLADE PLANFORM (chord vs radius)\n")
	sb.WriteString("  ────────────────────────────────\n")

	rHub, rTip := data.Radii[0], data.Radii[n-1]
	span := rTip - rHub

	// chord half-height at each column, interpolated between stations
	halves := make([]int, widthChars+1)
	for col := 0; col <= widthChars; col++ {
		r := rHub + span*float64(col)/float64(widthChars)
		c := chordAt(data.Radii, data.Chords, r)
		halves[col] = int(c / maxChord * float64(halfRows))
	}

	for row := halfRows; row >= -halfRows; row-- {
		if row == 0 {
			sb.WriteString("  ├")
		} else {
			sb.WriteString("  │")
		}
		for col := 0; col <= widthChars; col++ {
			h := halves[col]
			switch {
			case row == 0:
				sb.WriteString("─") // pitch axis
			case row > 0 && row <= h, row < 0 && -row <= h:
				sb.WriteString("█")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("   %-28s%30s\n",
		fmt.Sprintf("hub r=%.2f m", rHub),
		fmt.Sprintf("tip r=%.2f m", rTip)))
	sb.WriteString(fmt.Sprintf("  max chord = %.3f m\n", maxChord))
	return sb.String()
}

// chordAt linearly interpolates the chord between the bracketing
// stations; outside the station range it clamps to the end values.
func chordAt(radii, chords []float64, r float64) float64 {
	n := len(radii)
	if r <= radii[0] {
		return chords[0]
	}
	if r >= radii[n-1] {
		return chords[n-1]
	}
	for i := 1; i < n; i++ {
		if r <= radii[i] {
			t := (r - radii[i-1]) / (radii[i] - radii[i-1])
			return chords[i-1] + t*(chords[i]-chords[i-1])
		}
	}
	return chords[n-1]
}

// DrawSummaryBox frames a result summary in a double-line box.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
