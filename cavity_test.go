package gears

import (
	"errors"
	"math"
	"testing"

	"github.com/peterstace/simplefeatures/geom"
)

func TestToothCavityConnected(t *testing.T) {
	geo, err := DefaultParams().Geometry()
	if err != nil {
		t.Fatal(err)
	}
	cavity, err := toothCavity(geo, 16)
	if err != nil {
		t.Fatal(err)
	}
	if cavity.Type() != geom.TypePolygon {
		t.Fatalf("cavity is %s, want single polygon", cavity.Type())
	}

	// The mirror union makes the cavity symmetric about the vertical axis.
	poly, _ := cavity.AsPolygon()
	loop := setFromSeq(poly.ExteriorRing().Coordinates())
	const tol = 1e-9
	for _, v := range loop {
		mirrored := v
		mirrored.X = -mirrored.X
		best := math.MaxFloat64
		for _, u := range loop {
			d := math.Hypot(u.X-mirrored.X, u.Y-mirrored.Y)
			if d < best {
				best = d
			}
		}
		if best > tol {
			t.Fatalf("cavity not mirror symmetric: vertex %v has no counterpart (nearest %g)", v, best)
		}
	}

	// The cavity floor sits on the root circle, give or take the sag of
	// the hull edges chording between consecutive frames: roughly 9e-3
	// at 16 frames for these parameters.
	const rootSag = 2e-2
	for _, v := range loop {
		if r := math.Hypot(v.X, v.Y); r < geo.RootRadius-rootSag {
			t.Errorf("cavity vertex %v below root radius: %g < %g", v, r, geo.RootRadius)
		}
	}
}

// Two frames is the coarsest legal sweep. For typical parameters it must
// either produce a connected cavity or fail with the explicit degenerate
// sweep error, never anything in between.
func TestToothCavityMinimumFrames(t *testing.T) {
	geo, err := DefaultParams().Geometry()
	if err != nil {
		t.Fatal(err)
	}
	cavity, err := toothCavity(geo, 2)
	if err != nil {
		if !errors.Is(err, ErrDegenerateSweep) {
			t.Fatalf("unexpected error type: %v", err)
		}
		return
	}
	if cavity.Type() != geom.TypePolygon {
		t.Fatalf("cavity is %s, want single polygon", cavity.Type())
	}
}
