package airfoil

import (
	"math"
	"testing"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		[]float64{0, 2, 4}, []float64{0.5, 0.7, 0.6},
		[]float64{0, 10}, []float64{0.01, 0.05},
		0.66, 1.0,
	)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return tbl
}

func TestLookupAtSampledAngle(t *testing.T) {
	tbl := testTable(t)
	for i, angle := range []float64{0, 2, 4} {
		want := []float64{0.5, 0.7, 0.6}[i]
		cl, _ := tbl.Lookup(angle)
		if math.Abs(cl-want) > 1e-12 {
			t.Errorf("Lookup(%v) Cl = %v, want %v", angle, cl, want)
		}
	}
}

func TestLookupInterpolates(t *testing.T) {
	tbl := testTable(t)
	cl, cd := tbl.Lookup(1)
	if math.Abs(cl-0.6) > 1e-12 {
		t.Errorf("Cl at midpoint = %v, want 0.6", cl)
	}
	if math.Abs(cd-0.014) > 1e-12 {
		t.Errorf("Cd at 1° = %v, want 0.014", cd)
	}
}

func TestLookupOutsideDomainReturnsFill(t *testing.T) {
	tbl := testTable(t)
	for _, angle := range []float64{-5, 4.001, 90} {
		cl, _ := tbl.Lookup(angle)
		if cl != 0.66 {
			t.Errorf("Cl at %v° = %v, want fill 0.66", angle, cl)
		}
	}
	// drag domain is wider than lift's upper bound
	_, cd := tbl.Lookup(8)
	if math.Abs(cd-0.042) > 1e-12 {
		t.Errorf("Cd at 8° = %v, want interpolated 0.042", cd)
	}
	_, cd = tbl.Lookup(11)
	if cd != 1.0 {
		t.Errorf("Cd at 11° = %v, want fill 1.0", cd)
	}
}

func TestNewTableRejectsBadSamples(t *testing.T) {
	cases := []struct {
		name       string
		angles     []float64
		coefs      []float64
	}{
		{"too few samples", []float64{1}, []float64{0.5}},
		{"length mismatch", []float64{0, 1, 2}, []float64{0.5, 0.6}},
		{"non-increasing angles", []float64{0, 2, 2}, []float64{0.5, 0.6, 0.7}},
		{"decreasing angles", []float64{2, 1, 0}, []float64{0.5, 0.6, 0.7}},
	}
	good := []float64{0, 10}
	goodC := []float64{0.0, 0.1}

	for _, tc := range cases {
		if _, err := NewTable(tc.angles, tc.coefs, good, goodC, 0, 0); err == nil {
			t.Errorf("%s (lift): expected error", tc.name)
		}
		if _, err := NewTable(good, goodC, tc.angles, tc.coefs, 0, 0); err == nil {
			t.Errorf("%s (drag): expected error", tc.name)
		}
	}
}

func TestTableIsIsolatedFromCallerSlices(t *testing.T) {
	angles := []float64{0, 2}
	coefs := []float64{0.5, 0.7}
	tbl, err := NewTable(angles, coefs, []float64{0, 10}, []float64{0, 0.1}, 0, 0)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	angles[1] = 100
	coefs[1] = -1
	cl, _ := tbl.Lookup(2)
	if math.Abs(cl-0.7) > 1e-12 {
		t.Errorf("table mutated through caller slice: Cl = %v", cl)
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	cl, cd := tbl.Lookup(3)
	if math.Abs(cl-0.6589) > 1e-12 {
		t.Errorf("default Cl at 3° = %v, want 0.6589", cl)
	}
	if cd != 0 {
		t.Errorf("default Cd at 3° = %v, want 0", cd)
	}
	cl, cd = tbl.Lookup(-30)
	if cl != DefaultLiftFill || cd != DefaultDragFill {
		t.Errorf("default fills = %v, %v; want %v, %v", cl, cd, DefaultLiftFill, DefaultDragFill)
	}
}
