package rotor

import (
	"sync"

	"github.com/windtools/gobem/internal/airfoil"
	"github.com/windtools/gobem/internal/bem"
)

// Config describes a rotor as hub/tip scalars. Per-element geometry is
// interpolated linearly across the stations, matching the reference
// blade definition.
type Config struct {
	HubRadius float64 // m
	TipRadius float64 // m
	HubChord  float64 // m
	TipChord  float64 // m
	HubTwist  float64 // deg
	TipTwist  float64 // deg
	Pitch     float64 // overall blade pitch added to every twist (deg)
	Blades    int
	RPM       float64
	Elements  int

	Flow bem.FlowConditions

	// Solver overrides; zero values take the solver defaults.
	Tol     float64
	MaxIter int

	// Polar table; nil takes airfoil.Default().
	Table *airfoil.Table
}

// Validate fails fast on configuration the solver cannot work with.
func (c Config) Validate() error {
	if c.Elements < 1 {
		return bem.NewConfigError("element count must be at least 1, got %d", c.Elements)
	}
	if c.HubRadius <= 0 {
		return bem.NewConfigError("hub radius must be positive, got %.4f", c.HubRadius)
	}
	if c.TipRadius <= c.HubRadius {
		return bem.NewConfigError("tip radius (%.4f) must exceed hub radius (%.4f)", c.TipRadius, c.HubRadius)
	}
	if c.HubChord <= 0 || c.TipChord <= 0 {
		return bem.NewConfigError("chord must be positive (hub %.4f, tip %.4f)", c.HubChord, c.TipChord)
	}
	if c.Blades < 1 {
		return bem.NewConfigError("blade count must be at least 1, got %d", c.Blades)
	}
	if c.RPM <= 0 {
		return bem.NewConfigError("rpm must be positive, got %.4f", c.RPM)
	}
	return c.Flow.Validate()
}

// Assembly wires N blade element solves to the aggregator and exposes
// the rotor as a single analysis unit: set geometry and flow, call
// Evaluate, read performance. Station geometry is fixed at
// construction.
type Assembly struct {
	cfg      Config
	geometry []bem.ElementGeometry
	solver   *bem.Solver

	// Warm-start seeds from the previous converged evaluation, one per
	// station. A hint only; cleared entries fall back to the default
	// seed inside the solver.
	mu   sync.Mutex
	warm []*bem.Guess
}

// Result carries one evaluation's outputs: the aggregate performance
// and the full per-element diagnostics for external recording.
type Result struct {
	Performance *bem.RotorPerformance
	Elements    []*bem.ElementState

	// Failed lists the indices of elements whose solve did not
	// converge. Empty on success.
	Failed []int
}

// New builds an assembly, interpolating geometry linearly from hub to
// tip across cfg.Elements stations.
func New(cfg Config) (*Assembly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	radii, dr := Linspace(cfg.HubRadius, cfg.TipRadius, cfg.Elements)
	chords, _ := Linspace(cfg.HubChord, cfg.TipChord, cfg.Elements)
	twists, _ := Linspace(cfg.HubTwist+cfg.Pitch, cfg.TipTwist+cfg.Pitch, cfg.Elements)

	geoms := make([]bem.ElementGeometry, cfg.Elements)
	for i := range geoms {
		geoms[i] = bem.ElementGeometry{
			Radius:   radii[i],
			Width:    dr,
			Chord:    chords[i],
			TwistDeg: twists[i],
			Blades:   cfg.Blades,
		}
	}
	return NewFromGeometry(cfg, geoms)
}

// NewFromGeometry builds an assembly over an explicit station list,
// e.g. one produced by a Builder spacing policy. Radii must increase
// from hub to tip and every element must satisfy its invariants.
func NewFromGeometry(cfg Config, geoms []bem.ElementGeometry) (*Assembly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(geoms) != cfg.Elements {
		return nil, bem.NewConfigError("geometry has %d stations but config declares %d elements", len(geoms), cfg.Elements)
	}
	for i, g := range geoms {
		if err := g.Validate(); err != nil {
			return nil, bem.NewConfigError("element %d: %v", i, err)
		}
		if i > 0 && g.Radius <= geoms[i-1].Radius {
			return nil, bem.NewConfigError("element radii must increase hub to tip (station %d)", i)
		}
	}

	table := cfg.Table
	if table == nil {
		table = airfoil.Default()
	}
	solver := bem.NewSolver(table)
	if cfg.Tol > 0 {
		solver.Tol = cfg.Tol
	}
	if cfg.MaxIter > 0 {
		solver.MaxIter = cfg.MaxIter
	}

	return &Assembly{
		cfg:      cfg,
		geometry: append([]bem.ElementGeometry(nil), geoms...),
		solver:   solver,
		warm:     make([]*bem.Guess, len(geoms)),
	}, nil
}

// Geometry returns a copy of the station geometry.
func (a *Assembly) Geometry() []bem.ElementGeometry {
	return append([]bem.ElementGeometry(nil), a.geometry...)
}

// Config returns the assembly configuration.
func (a *Assembly) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// SetOperatingPoint changes the rotor speed and flow conditions for
// subsequent evaluations, keeping the station geometry and the warm
// start seeds. This is the path an outer driver uses to re-evaluate
// the same rotor at varied operating points.
func (a *Assembly) SetOperatingPoint(rpm float64, flow bem.FlowConditions) error {
	if rpm <= 0 {
		return bem.NewConfigError("rpm must be positive, got %.4f", rpm)
	}
	if err := flow.Validate(); err != nil {
		return err
	}
	a.mu.Lock()
	a.cfg.RPM = rpm
	a.cfg.Flow = flow
	a.mu.Unlock()
	return nil
}

// Evaluate solves every station and aggregates the results. Element
// solves are independent (shared inputs are read-only), so they run in
// parallel; the aggregation acts as the barrier. Element states are
// produced fresh on every call.
//
// A failed element does not abort the others: its index is recorded in
// Result.Failed, the aggregation step then returns the
// *bem.AggregationError, and the partial diagnostics stay readable in
// Result.Elements.
func (a *Assembly) Evaluate() (*Result, error) {
	n := len(a.geometry)
	states := make([]*bem.ElementState, n)
	errs := make([]error, n)

	a.mu.Lock()
	seeds := append([]*bem.Guess(nil), a.warm...)
	rpm, flow, tip := a.cfg.RPM, a.cfg.Flow, a.cfg.TipRadius
	a.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			states[i], errs[i] = a.solver.Solve(a.geometry[i], flow, rpm, tip, seeds[i])
		}(i)
	}
	wg.Wait()

	res := &Result{Elements: states}
	for i, err := range errs {
		if err != nil {
			res.Failed = append(res.Failed, i)
		}
	}

	// Remember converged values to seed the next evaluation.
	a.mu.Lock()
	for i, st := range states {
		if st != nil && st.Converged {
			a.warm[i] = &bem.Guess{A: st.A, B: st.B}
		} else {
			a.warm[i] = nil
		}
	}
	a.mu.Unlock()

	perf, err := bem.Aggregate(states, tip, rpm, flow)
	if err != nil {
		return res, err
	}
	res.Performance = perf
	return res, nil
}

// ResetWarmStart clears the stored seeds, forcing the next evaluation
// to start from the solver defaults.
func (a *Assembly) ResetWarmStart() {
	a.mu.Lock()
	for i := range a.warm {
		a.warm[i] = nil
	}
	a.mu.Unlock()
}
