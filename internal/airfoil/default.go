package airfoil

// Default polar samples for the NREL reference section used by the
// rotor commands when no custom table is supplied. Lift is sampled over
// the narrow attached-flow range from the paper; drag over 0°–40°.
var (
	defaultLiftAngles = []float64{0.2, 1, 2, 3, 4, 5}
	defaultLiftCoefs  = []float64{0.7, 0.6866, 0.6609, 0.6589, 0.6597, 0.6595}

	defaultDragAngles = []float64{0, 10, 20, 30, 40}
	defaultDragCoefs  = []float64{0, 0, 0.3, 0.6, 1.0}
)

const (
	// DefaultLiftFill is returned for angles of attack outside the lift
	// samples: a stalled-section lift near the tabulated plateau.
	DefaultLiftFill = 0.66

	// DefaultDragFill is returned for angles of attack outside the drag
	// samples: flat-plate deep-stall drag.
	DefaultDragFill = 1.0
)

// Default returns the built-in reference polar table.
func Default() *Table {
	t, err := NewTable(defaultLiftAngles, defaultLiftCoefs, defaultDragAngles, defaultDragCoefs, DefaultLiftFill, DefaultDragFill)
	if err != nil {
		// the built-in samples are known-good
		panic(err)
	}
	return t
}
