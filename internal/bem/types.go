package bem

import "fmt"

// FlowConditions describes the free stream a rotor operates in. One
// instance is shared read-only by every element of an evaluation.
type FlowConditions struct {
	Rho  float64 // air density (kg/m³)
	VInf float64 // free stream velocity (m/s)
}

// Validate checks the flow conditions are physical.
func (f FlowConditions) Validate() error {
	if f.Rho <= 0 {
		return &ConfigError{msg: fmt.Sprintf("air density must be positive, got %.4f", f.Rho)}
	}
	if f.VInf <= 0 {
		return &ConfigError{msg: fmt.Sprintf("free stream velocity must be positive, got %.4f", f.VInf)}
	}
	return nil
}

// ElementGeometry describes one radial blade element. Immutable for a
// given evaluation.
type ElementGeometry struct {
	Radius   float64 // mean element radius (m)
	Width    float64 // radial width dr (m)
	Chord    float64 // local chord length (m)
	TwistDeg float64 // local twist angle including pitch (deg)
	Blades   int     // blade count B
}

// Validate checks the element invariants.
func (g ElementGeometry) Validate() error {
	if g.Radius <= 0 {
		return &ConfigError{msg: fmt.Sprintf("element radius must be positive, got %.4f", g.Radius)}
	}
	if g.Width <= 0 {
		return &ConfigError{msg: fmt.Sprintf("element width must be positive, got %.4f", g.Width)}
	}
	if g.Chord <= 0 {
		return &ConfigError{msg: fmt.Sprintf("element chord must be positive, got %.4f", g.Chord)}
	}
	if g.Blades < 1 {
		return &ConfigError{msg: fmt.Sprintf("blade count must be at least 1, got %d", g.Blades)}
	}
	return nil
}

// ElementState holds the converged solution for one blade element.
// Produced fresh on every solve; never reused across evaluations.
type ElementState struct {
	// Converged induction factors
	A float64 // axial inflow factor
	B float64 // tangential inflow factor

	// Flow geometry at the section
	Phi      float64 // relative inflow angle (rad)
	AlphaDeg float64 // local angle of attack (deg)
	Sigma    float64 // local solidity
	LambdaR  float64 // local tip speed ratio

	// Local velocities (m/s)
	V0 float64 // axial flow at the disk
	V1 float64 // resultant local velocity
	V2 float64 // tangential flow at the disk

	// Section coefficients at the converged angle of attack
	Cl float64
	Cd float64

	// Section loads
	DeltaT  float64 // thrust on the element (N)
	DeltaQ  float64 // torque on the element (N·m)
	DeltaCt float64 // element thrust coefficient contribution
	DeltaCp float64 // element power coefficient contribution

	// Solve diagnostics
	Converged  bool
	Iterations int
	Residual   float64
}
