package gears

import (
	"log"
	"math"
)

// Geometry holds all radii and thicknesses derived from gear parameters.
// Values are in the same length units as the module.
type Geometry struct {
	PitchDiameter float64
	PitchRadius   float64
	// BaseRadius is the involute base circle radius. Diagnostic only, the
	// rack cutting simulation does not consume it.
	BaseRadius     float64
	OuterRadius    float64 // tooth tip radius, pitch radius plus addendum.
	RootRadius     float64 // tooth root radius, pitch radius minus dedendum.
	CircularPitch  float64
	ToothThickness float64 // arc thickness at the pitch circle less backlash.
	Addendum       float64
	Clearance      float64
	Dedendum       float64
	// PressureAngle carries the input flank angle through to the cutter
	// construction. Radians.
	PressureAngle float64
}

// Geometry derives all gear geometry from p. It fails with a *ParamError
// when the parameters would produce a degenerate or self intersecting
// tooth, before any polygon work is attempted.
func (p Params) Geometry() (Geometry, error) {
	if err := p.validate(); err != nil {
		return Geometry{}, err
	}
	g := Geometry{
		PitchDiameter: p.Module * (float64(p.Teeth) + 2*p.ProfileShift),
		CircularPitch: math.Pi * p.Module,
		Addendum:      p.Module,
		Clearance:     p.ClearanceFactor * p.Module,
		PressureAngle: p.PressureAngle,
	}
	g.PitchRadius = g.PitchDiameter / 2
	g.BaseRadius = g.PitchRadius * math.Cos(p.PressureAngle)
	g.ToothThickness = g.CircularPitch/2 - p.Backlash
	g.Dedendum = g.Addendum + g.Clearance
	g.OuterRadius = g.PitchRadius + g.Addendum
	g.RootRadius = g.PitchRadius - g.Dedendum
	if g.ToothThickness <= 0 {
		return Geometry{}, &ParamError{"Backlash", "leaves non-positive tooth thickness"}
	}
	if g.RootRadius <= 0 {
		return Geometry{}, &ParamError{"ClearanceFactor", "dedendum reaches the gear center"}
	}
	return g, nil
}

// LogTo writes each derived value to l, one line per value. Informational
// only; Generate never logs on its own.
func (g Geometry) LogTo(l *log.Logger) {
	l.Printf("pitch diameter:  %.3f", g.PitchDiameter)
	l.Printf("pitch radius:    %.3f", g.PitchRadius)
	l.Printf("base radius:     %.3f", g.BaseRadius)
	l.Printf("outer radius:    %.3f", g.OuterRadius)
	l.Printf("root radius:     %.3f", g.RootRadius)
	l.Printf("circular pitch:  %.3f", g.CircularPitch)
	l.Printf("tooth thickness: %.3f", g.ToothThickness)
	l.Printf("addendum:        %.3f", g.Addendum)
	l.Printf("dedendum:        %.3f", g.Dedendum)
}
