package bem

import (
	"math"

	"github.com/windtools/gobem/internal/airfoil"
)

// Solver defaults. Tolerance applies to the norm of the fixed-point
// residual (a - a', b - b').
const (
	DefaultTol     = 1e-6
	DefaultMaxIter = 100
	DefaultRelax   = 0.75

	// Default starting point for the induction iteration.
	DefaultAInit = 0.2
	DefaultBInit = 0.01

	// Updates that would divide by sinφ, cosφ or Cl smaller than this
	// are rejected in favor of a bounded fallback step.
	guardEps = 1e-9

	// Upper clamp keeping the axial factor inside the momentum-theory
	// validity band 0 ≤ a < 1.
	aMax = 0.999
)

// Guess seeds the induction iteration, typically with the converged
// values of a previous evaluation. It is a performance hint only; the
// solve must succeed from the default seed as well.
type Guess struct {
	A float64
	B float64
}

// Solver computes the converged state of a single blade element by
// solving the coupled momentum/blade-element equations for the axial
// and tangential induction factors.
type Solver struct {
	Table   *airfoil.Table
	Tol     float64
	MaxIter int
	Relax   float64 // under-relaxation factor for the fixed-point update
}

// NewSolver returns a solver over the given polar table with default
// tolerance, iteration budget and relaxation.
func NewSolver(table *airfoil.Table) *Solver {
	return &Solver{
		Table:   table,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Relax:   DefaultRelax,
	}
}

// Solve iterates the induction system for one element:
//
//	φ  = atan(λr·(1+b) / (1−a))
//	α  = θ − φ
//	a' = 1 / (1 + 4cos²φ / (σ·Cl·sinφ))
//	b' = σ·Cl / (4·λr·cosφ) · (1 − a')
//
// until ‖(a−a', b−b')‖ < Tol, then derives local velocities and the
// section thrust/power contributions normalized by the disk at
// refRadius. The lift and drag coefficients are looked up at the angle
// of attack computed in the same iteration (not lagged). A nil guess
// starts from the default seed.
//
// If the iteration budget runs out a *ConvergenceError is returned and
// no partial state is produced.
func (s *Solver) Solve(geom ElementGeometry, flow FlowConditions, rpm, refRadius float64, guess *Guess) (*ElementState, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := flow.Validate(); err != nil {
		return nil, err
	}
	if rpm <= 0 {
		return nil, NewConfigError("rpm must be positive, got %.4f", rpm)
	}
	if refRadius <= 0 {
		return nil, NewConfigError("reference radius must be positive, got %.4f", refRadius)
	}

	sigma := float64(geom.Blades) * geom.Chord / (2 * math.Pi * geom.Radius)
	omega := rpm * 2 * math.Pi / 60
	lambdaR := omega * geom.Radius / flow.VInf
	twist := geom.TwistDeg * math.Pi / 180

	a, b := DefaultAInit, DefaultBInit
	if guess != nil {
		a, b = guess.A, guess.B
		if a < 0 {
			a = 0
		}
		if a > aMax {
			a = aMax
		}
	}

	var (
		residual  = math.Inf(1)
		converged = false
		iters     = 0
	)

	for iters = 1; iters <= s.MaxIter; iters++ {
		phi := math.Atan2(lambdaR*(1+b), 1-a)
		alphaDeg := (twist - phi) * 180 / math.Pi
		cl, _ := s.Table.Lookup(alphaDeg)
		sinPhi, cosPhi := math.Sincos(phi)

		if math.Abs(sinPhi) < guardEps || math.Abs(cosPhi) < guardEps || math.Abs(cl) < guardEps {
			// The update formulas would divide by zero here. Take a
			// bounded half-step back toward the default seed instead
			// of letting the iterate escape.
			a = 0.5 * (a + DefaultAInit)
			b = 0.5 * (b + DefaultBInit)
			continue
		}

		aNext := 1 / (1 + 4*cosPhi*cosPhi/(sigma*cl*sinPhi))
		if aNext < 0 {
			aNext = 0
		}
		if aNext > aMax {
			aNext = aMax
		}
		bNext := sigma * cl / (4 * lambdaR * cosPhi) * (1 - aNext)

		residual = math.Hypot(a-aNext, b-bNext)
		if residual < s.Tol {
			a, b = aNext, bNext
			converged = true
			break
		}

		a += s.Relax * (aNext - a)
		b += s.Relax * (bNext - b)
	}

	if !converged {
		return nil, &ConvergenceError{Iterations: s.MaxIter, Residual: residual, Tol: s.Tol}
	}

	// Derived quantities at the converged point.
	phi := math.Atan2(lambdaR*(1+b), 1-a)
	alphaDeg := (twist - phi) * 180 / math.Pi
	cl, cd := s.Table.Lookup(alphaDeg)
	sinPhi, cosPhi := math.Sincos(phi)

	v0 := flow.VInf * (1 + a)
	v2 := omega * geom.Radius * (1 - b)
	v1 := math.Hypot(v0, v2)

	qc := float64(geom.Blades) * 0.5 * flow.Rho * v1 * v1 * geom.Chord * geom.Width
	dT := qc * (cl*cosPhi - cd*sinPhi)
	dQ := qc * geom.Radius * (cl*sinPhi + cd*cosPhi)

	qRef := 0.5 * flow.Rho * flow.VInf * flow.VInf * math.Pi * refRadius * refRadius
	dCt := dT / qRef
	dCp := b * (1 - a) * lambdaR * lambdaR * lambdaR * (1 - cd/cl*math.Tan(phi))

	return &ElementState{
		A:          a,
		B:          b,
		Phi:        phi,
		AlphaDeg:   alphaDeg,
		Sigma:      sigma,
		LambdaR:    lambdaR,
		V0:         v0,
		V1:         v1,
		V2:         v2,
		Cl:         cl,
		Cd:         cd,
		DeltaT:     dT,
		DeltaQ:     dQ,
		DeltaCt:    dCt,
		DeltaCp:    dCp,
		Converged:  true,
		Iterations: iters,
		Residual:   residual,
	}, nil
}
