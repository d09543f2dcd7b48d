package airfoil

import "fmt"

// Table holds sampled lift and drag polars for a blade section.
// Lift and drag may be sampled at different angles. The table is
// immutable once built; Lookup never fails.
type Table struct {
	liftAngles []float64 // deg, strictly increasing
	liftCoefs  []float64
	dragAngles []float64 // deg, strictly increasing
	dragCoefs  []float64

	// Returned for angles outside the sampled range. Extrapolating the
	// sample trend can blow up the induction iteration when the angle of
	// attack excursions are large, so a flat value is used instead.
	liftFill float64
	dragFill float64
}

// NewTable builds a polar table from independent lift and drag samples.
// Angles are in degrees and must be strictly increasing within each set.
func NewTable(liftAngles, liftCoefs, dragAngles, dragCoefs []float64, liftFill, dragFill float64) (*Table, error) {
	if err := checkSamples("lift", liftAngles, liftCoefs); err != nil {
		return nil, err
	}
	if err := checkSamples("drag", dragAngles, dragCoefs); err != nil {
		return nil, err
	}

	t := &Table{
		liftAngles: append([]float64(nil), liftAngles...),
		liftCoefs:  append([]float64(nil), liftCoefs...),
		dragAngles: append([]float64(nil), dragAngles...),
		dragCoefs:  append([]float64(nil), dragCoefs...),
		liftFill:   liftFill,
		dragFill:   dragFill,
	}
	return t, nil
}

func checkSamples(name string, angles, coefs []float64) error {
	if len(angles) < 2 {
		return &TableError{msg: fmt.Sprintf("%s polar needs at least 2 samples, got %d", name, len(angles))}
	}
	if len(angles) != len(coefs) {
		return &TableError{msg: fmt.Sprintf("%s polar has %d angles but %d coefficients", name, len(angles), len(coefs))}
	}
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return &TableError{msg: fmt.Sprintf("%s polar angles must be strictly increasing (sample %d)", name, i)}
		}
	}
	return nil
}

// Lookup returns the interpolated (Cl, Cd) at the given angle of attack
// in degrees. Angles outside a polar's sampled range return that polar's
// fill value.
func (t *Table) Lookup(angleDeg float64) (cl, cd float64) {
	cl = interp(t.liftAngles, t.liftCoefs, angleDeg, t.liftFill)
	cd = interp(t.dragAngles, t.dragCoefs, angleDeg, t.dragFill)
	return cl, cd
}

// LiftSamples returns copies of the lift polar samples.
func (t *Table) LiftSamples() (angles, coefs []float64) {
	return append([]float64(nil), t.liftAngles...), append([]float64(nil), t.liftCoefs...)
}

// DragSamples returns copies of the drag polar samples.
func (t *Table) DragSamples() (angles, coefs []float64) {
	return append([]float64(nil), t.dragAngles...), append([]float64(nil), t.dragCoefs...)
}

// interp does piecewise-linear interpolation between the bracketing
// samples, or returns fill when x is outside [angles[0], angles[n-1]].
func interp(angles, coefs []float64, x, fill float64) float64 {
	n := len(angles)
	if x < angles[0] || x > angles[n-1] {
		return fill
	}
	// find the bracketing interval
	for i := 1; i < n; i++ {
		if x <= angles[i] {
			slope := (coefs[i] - coefs[i-1]) / (angles[i] - angles[i-1])
			return coefs[i-1] + slope*(x-angles[i-1])
		}
	}
	return coefs[n-1]
}

// TableError reports an invalid polar table definition.
type TableError struct {
	msg string
}

func (e *TableError) Error() string {
	return e.msg
}
