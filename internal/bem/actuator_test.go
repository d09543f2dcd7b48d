package bem

import (
	"math"
	"testing"
)

func TestActuatorDiskBetzLimit(t *testing.T) {
	// Sweep the induction factor; the maximum power coefficient must
	// land at a = 1/3 with Cp = 16/27.
	flow := FlowConditions{Rho: 1.225, VInf: 7}

	bestA, bestCp := 0.0, 0.0
	for a := 0.0; a <= 0.5; a += 0.0005 {
		perf, err := ActuatorDisk{A: a, Area: 100, Flow: flow}.Evaluate()
		if err != nil {
			t.Fatalf("a = %v: %v", a, err)
		}
		if perf.Cp > bestCp {
			bestA, bestCp = a, perf.Cp
		}
	}

	if math.Abs(bestA-1.0/3.0) > 1e-3 {
		t.Errorf("Cp maximum at a = %v, want 1/3", bestA)
	}
	if math.Abs(bestCp-BetzLimit) > 1e-6 {
		t.Errorf("max Cp = %v, want %v", bestCp, BetzLimit)
	}
}

func TestActuatorDiskMomentumBalance(t *testing.T) {
	flow := FlowConditions{Rho: 1.225, VInf: 10}
	perf, err := ActuatorDisk{A: 0.25, Area: 50, Flow: flow}.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// velocity at the disk is the average of free stream and slipstream
	if math.Abs(perf.VRotor-0.5*(flow.VInf+perf.VDownstream)) > 1e-12 {
		t.Errorf("VRotor = %v, want mean of %v and %v", perf.VRotor, flow.VInf, perf.VDownstream)
	}
	if math.Abs(perf.Ct-4*0.25*0.75) > 1e-12 {
		t.Errorf("Ct = %v, want %v", perf.Ct, 4*0.25*0.75)
	}
	if math.Abs(perf.Cp-perf.Ct*0.75) > 1e-12 {
		t.Errorf("Cp = %v, want %v", perf.Cp, perf.Ct*0.75)
	}
}

func TestActuatorDiskRejectsInvalidInputs(t *testing.T) {
	flow := FlowConditions{Rho: 1.225, VInf: 7}
	cases := []ActuatorDisk{
		{A: -0.1, Area: 10, Flow: flow},
		{A: 1.1, Area: 10, Flow: flow},
		{A: 0.3, Area: 0, Flow: flow},
		{A: 0.3, Area: 10, Flow: FlowConditions{Rho: 0, VInf: 7}},
	}
	for i, disk := range cases {
		if _, err := disk.Evaluate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
