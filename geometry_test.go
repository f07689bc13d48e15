package gears_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/gears"
)

func TestGeometryStandard(t *testing.T) {
	geo, err := gears.DefaultParams().Geometry()
	if err != nil {
		t.Fatal(err)
	}
	const tol = 1e-9
	for _, tc := range []struct {
		name      string
		got, want float64
	}{
		{"pitch diameter", geo.PitchDiameter, 40},
		{"pitch radius", geo.PitchRadius, 20},
		{"outer radius", geo.OuterRadius, 22},
		{"root radius", geo.RootRadius, 17.666},
		{"base radius", geo.BaseRadius, 20 * math.Cos(gears.DtoR(20))},
		{"circular pitch", geo.CircularPitch, 2 * math.Pi},
		{"tooth thickness", geo.ToothThickness, math.Pi - 0.1},
		{"addendum", geo.Addendum, 2},
		{"clearance", geo.Clearance, 0.334},
		{"dedendum", geo.Dedendum, 2.334},
	} {
		if math.Abs(tc.got-tc.want) > tol {
			t.Errorf("%s = %.9f, want %.9f", tc.name, tc.got, tc.want)
		}
	}
}

// Profile shift must enlarge the pitch radius per the derivation formula,
// not leave it unchanged.
func TestGeometryProfileShift(t *testing.T) {
	p := gears.DefaultParams()
	p.Teeth = 10
	p.ProfileShift = 1.0
	geo, err := p.Geometry()
	if err != nil {
		t.Fatal(err)
	}
	if want := 12.0; geo.PitchRadius != want {
		t.Errorf("pitch radius = %g, want %g", geo.PitchRadius, want)
	}
}

func TestGeometryInvalid(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*gears.Params)
	}{
		{"too few teeth", func(p *gears.Params) { p.Teeth = 2 }},
		{"negative module", func(p *gears.Params) { p.Module = -1 }},
		{"zero pressure angle", func(p *gears.Params) { p.PressureAngle = 0 }},
		{"negative backlash", func(p *gears.Params) { p.Backlash = -0.1 }},
		{"single frame", func(p *gears.Params) { p.Frames = 1 }},
		{"backlash eats tooth", func(p *gears.Params) { p.Backlash = math.Pi }},
		{"dedendum past center", func(p *gears.Params) { p.Teeth = 3; p.ClearanceFactor = 1 }},
	} {
		p := gears.DefaultParams()
		tc.mutate(&p)
		_, err := p.Geometry()
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		var perr *gears.ParamError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error %v is not a *ParamError", tc.name, err)
		}
		if _, err := gears.Generate(p); err == nil {
			t.Errorf("%s: Generate did not propagate parameter error", tc.name)
		}
	}
}
