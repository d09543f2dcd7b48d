package bem

// BetzLimit is the maximum power coefficient of an ideal actuator
// disk, 16/27, reached at a = 1/3.
const BetzLimit = 16.0 / 27.0

// ActuatorDisk is the simple momentum-theory wind turbine model: a
// uniformly loaded disk with a single axial induction factor. It has
// no blade geometry and serves as the idealized reference against
// which the blade-element results are judged.
type ActuatorDisk struct {
	A    float64 // axial induction factor, 0 ≤ a ≤ 1
	Area float64 // disk area (m²)
	Flow FlowConditions
}

// DiskPerformance holds the actuator-disk outputs.
type DiskPerformance struct {
	VRotor      float64 // velocity at the rotor plane (m/s)
	VDownstream float64 // slipstream velocity far downstream (m/s)
	Ct          float64
	Thrust      float64 // N
	Cp          float64
	Power       float64 // W
}

// Evaluate computes the disk loading from momentum theory:
// Ct = 4a(1−a), Cp = Ct(1−a).
func (d ActuatorDisk) Evaluate() (*DiskPerformance, error) {
	if d.A < 0 || d.A > 1 {
		return nil, NewConfigError("induction factor must be in [0, 1], got %.4f", d.A)
	}
	if d.Area <= 0 {
		return nil, NewConfigError("disk area must be positive, got %.4f", d.Area)
	}
	if err := d.Flow.Validate(); err != nil {
		return nil, err
	}

	vu := d.Flow.VInf
	q := 0.5 * d.Flow.Rho * d.Area * vu * vu

	perf := &DiskPerformance{
		VRotor:      vu * (1 - d.A),
		VDownstream: vu * (1 - 2*d.A),
		Ct:          4 * d.A * (1 - d.A),
	}
	perf.Thrust = perf.Ct * q
	perf.Cp = perf.Ct * (1 - d.A)
	perf.Power = perf.Cp * q * vu
	return perf, nil
}
