// Package gears generates 2D involute-style spur gear outlines by simulating
// the rack cutting process: a trapezoidal cutter is swept against a circular
// blank once per tooth and the swept material is removed with polygon
// boolean operations.
package gears

import (
	"errors"
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Params defines a spur gear. The zero value is not usable; start from
// DefaultParams.
type Params struct {
	Teeth int // number of teeth, at least 3.

	// Module defines the size of the gear: pitch diameter divided by
	// tooth count. Length units, conventionally millimeters.
	Module float64

	PressureAngle float64 // tooth flank pressure angle in radians.
	Backlash      float64 // tooth thickness reduction for meshing clearance.

	// ProfileShift shifts the cutter radially from the standard pitch
	// position. Dimensionless, typically in [-1, 1].
	ProfileShift float64

	// ClearanceFactor scales the extra dedendum depth below the meshing
	// gear's addendum. Dimensionless, 0.167 is customary.
	ClearanceFactor float64

	// Frames is the number of cutter positions sampled per flank sweep.
	// More frames give a smoother, more accurate tooth at higher cost.
	// At least 2.
	Frames int
}

// DefaultParams returns the parameters of a standard 20 tooth, module 2,
// 20 degree pressure angle gear.
func DefaultParams() Params {
	return Params{
		Teeth:           20,
		Module:          2.0,
		PressureAngle:   DtoR(20.0),
		Backlash:        0.1,
		ProfileShift:    0,
		ClearanceFactor: 0.167,
		Frames:          16,
	}
}

// ParamError describes a gear parameter combination that cannot produce a
// valid gear.
type ParamError struct {
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	return "gears: parameter " + e.Param + ": " + e.Reason
}

// ErrDegenerateSweep indicates the sweep frames were spaced too far apart
// to approximate the cutter motion: consecutive pair hulls either failed
// to overlap into a connected tooth cavity, or bulged far enough past the
// true swept envelope to consume the tooth tips. Increase Frames to fix.
var ErrDegenerateSweep = errors.New("gears: sweep too coarse to cut a valid tooth profile")

func (p Params) validate() error {
	switch {
	case p.Teeth < 3:
		return &ParamError{"Teeth", "need at least 3 teeth"}
	case p.Module <= 0:
		return &ParamError{"Module", "must be positive"}
	case p.PressureAngle <= 0 || p.PressureAngle >= math.Pi/2:
		return &ParamError{"PressureAngle", "must be in (0, pi/2) radians"}
	case p.Backlash < 0:
		return &ParamError{"Backlash", "must be non-negative"}
	case p.ClearanceFactor < 0:
		return &ParamError{"ClearanceFactor", "must be non-negative"}
	case p.Frames < 2:
		return &ParamError{"Frames", "need at least 2 sweep frames"}
	}
	return nil
}

// Gear is a generated spur gear outline.
type Gear struct {
	// Outline is the closed exterior boundary of the gear in
	// counterclockwise order. The last vertex repeats the first.
	Outline []r2.Vec
	// PitchRadius is the radius of the theoretical rolling circle on which
	// tooth spacing is defined.
	PitchRadius float64
	// Geo holds all values derived from the input parameters.
	Geo Geometry
}

// Generate computes the gear outline for p. It is deterministic and touches
// no shared state: concurrent calls with distinct parameters need no
// coordination.
func Generate(p Params) (*Gear, error) {
	geo, err := p.Geometry()
	if err != nil {
		return nil, err
	}
	cavity, err := toothCavity(geo, p.Frames)
	if err != nil {
		return nil, err
	}
	blank, err := disk(geo.OuterRadius, diskSegments*p.Teeth)
	if err != nil {
		return nil, err
	}

	// Cut one cavity per tooth. The accumulator is rotated between cuts
	// while the cavity stays fixed at the origin; after Teeth iterations
	// the accumulated rotation is a full turn and the blank is back in its
	// original orientation.
	step := 2 * math.Pi / float64(p.Teeth)
	work := blank
	for i := 0; i < p.Teeth; i++ {
		work, err = geom.Difference(work, cavity)
		if err != nil {
			return nil, fmt.Errorf("gears: cutting tooth %d: %w", i, err)
		}
		work, err = rotated(work, step)
		if err != nil {
			return nil, fmt.Errorf("gears: rotating blank after tooth %d: %w", i, err)
		}
	}

	outline, err := exteriorLoop(work)
	if err != nil {
		return nil, err
	}
	// Blank vertices that survive the cutting sit exactly on the outer
	// circle. If none survived, the pair hulls overcut the whole tooth
	// ring and the result is a toothless blob, not a gear.
	const tipTolerance = 1e-6
	var tip float64
	for _, v := range outline {
		tip = math.Max(tip, r2.Norm(v))
	}
	if tip < geo.OuterRadius-tipTolerance {
		return nil, fmt.Errorf("gears: %d frames overcut every tooth tip: %w", p.Frames, ErrDegenerateSweep)
	}
	return &Gear{
		Outline:     outline,
		PitchRadius: geo.PitchRadius,
		Geo:         geo,
	}, nil
}

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return radians * 180 / math.Pi
}
