package bem

import "math"

// RotorPerformance aggregates the converged element states of one
// evaluation into rotor-level numbers. Immutable once produced.
type RotorPerformance struct {
	NetThrust float64 // N
	NetTorque float64 // N·m
	NetPower  float64 // W

	Ct  float64 // thrust coefficient
	Cp  float64 // power coefficient
	Cq  float64 // torque coefficient
	J   float64 // advance ratio
	Eta float64 // efficiency
}

// Aggregate combines the element states of one radial sweep into rotor
// performance. Every element must have converged; otherwise an
// *AggregationError naming the failed indices is returned and no
// performance record is produced. The result is recomputed in full on
// every call.
func Aggregate(states []*ElementState, refRadius, rpm float64, flow FlowConditions) (*RotorPerformance, error) {
	if len(states) == 0 {
		return nil, NewConfigError("no element states to aggregate")
	}
	if refRadius <= 0 {
		return nil, NewConfigError("reference radius must be positive, got %.4f", refRadius)
	}
	if rpm <= 0 {
		return nil, NewConfigError("rpm must be positive, got %.4f", rpm)
	}
	if err := flow.Validate(); err != nil {
		return nil, err
	}

	var failed []int
	for i, st := range states {
		if st == nil || !st.Converged {
			failed = append(failed, i)
		}
	}
	if len(failed) > 0 {
		return nil, &AggregationError{Indices: failed}
	}

	var ct, cp float64
	for _, st := range states {
		ct += st.DeltaCt
		cp += st.DeltaCp
	}

	// Element contributions already carry the disk normalization, so
	// the sums are the rotor coefficients directly.
	q := 0.5 * flow.Rho * flow.VInf * flow.VInf * math.Pi * refRadius * refRadius
	omega := rpm * 2 * math.Pi / 60

	perf := &RotorPerformance{
		Ct:        ct,
		Cp:        cp,
		Cq:        cp / (2 * math.Pi),
		NetThrust: ct * q,
		NetPower:  cp * q * flow.VInf,
		J:         flow.VInf / (rpm / 60 * 2 * refRadius),
	}
	perf.NetTorque = perf.NetPower / omega
	if perf.Cq != 0 {
		perf.Eta = perf.Ct / perf.Cq * perf.J / (2 * math.Pi)
	}
	return perf, nil
}
