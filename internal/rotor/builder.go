package rotor

import "github.com/windtools/gobem/internal/bem"

// Builder parametrically generates the station geometry for an
// assembly: pick an element count and a spacing policy, and the blade
// chord/twist are interpolated from the hub/tip scalars at each
// generated radius. It carries no analysis logic of its own.
type Builder struct {
	Config  Config
	Spacing Spacing // nil means Uniform
}

// Build generates the station list and delegates to NewFromGeometry.
func (b Builder) Build() (*Assembly, error) {
	cfg := b.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	spacing := b.Spacing
	if spacing == nil {
		spacing = Uniform
	}
	radii := spacing(cfg.HubRadius, cfg.TipRadius, cfg.Elements)
	if len(radii) != cfg.Elements {
		return nil, bem.NewConfigError("spacing produced %d stations, want %d", len(radii), cfg.Elements)
	}

	span := cfg.TipRadius - cfg.HubRadius
	geoms := make([]bem.ElementGeometry, cfg.Elements)
	for i, r := range radii {
		t := (r - cfg.HubRadius) / span
		geoms[i] = bem.ElementGeometry{
			Radius:   r,
			Width:    stationWidth(radii, i, span),
			Chord:    cfg.HubChord + t*(cfg.TipChord-cfg.HubChord),
			TwistDeg: cfg.HubTwist + t*(cfg.TipTwist-cfg.HubTwist) + cfg.Pitch,
			Blades:   cfg.Blades,
		}
	}
	return NewFromGeometry(cfg, geoms)
}

// stationWidth assigns each station the half-distance to its
// neighbors, so non-uniform spacings keep widths consistent with the
// local station density. Uniform spacing reduces to the constant step.
func stationWidth(radii []float64, i int, span float64) float64 {
	n := len(radii)
	switch {
	case n == 1:
		return span
	case i == 0:
		return radii[1] - radii[0]
	case i == n-1:
		return radii[n-1] - radii[n-2]
	default:
		return 0.5 * (radii[i+1] - radii[i-1])
	}
}
