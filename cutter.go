package gears

import (
	"math"

	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// rackProfile returns the trapezoidal rack cutter cross section, symmetric
// about the vertical axis. The top edge at y=+addendum is the wide end of
// the trapezoid and cuts the tooth gap opening; the bottom edge at
// y=-dedendum cuts the root land.
func rackProfile(g Geometry) d2.Set {
	tan := math.Tan(g.PressureAngle)
	halfTop := 0.5*g.ToothThickness + g.Addendum*tan
	halfBot := 0.5*g.ToothThickness - g.Dedendum*tan
	return d2.Set{
		{X: -halfTop, Y: g.Addendum},
		{X: -halfBot, Y: -g.Dedendum},
		{X: halfBot, Y: -g.Dedendum},
		{X: halfTop, Y: g.Addendum},
	}
}

// sweepFrames places the cutter profile at n rolling positions. The frame
// at angle theta is the profile translated to (-theta*pitchRadius,
// pitchRadius) and then rotated by theta about the gear center, which
// approximates the combined rolling and sliding of a rack cutter against
// the rotating blank. Frames are returned in increasing theta order over
// [0, 2*toothThickness/pitchRadius], endpoints included.
func sweepFrames(profile d2.Set, g Geometry, n int) []d2.Set {
	l := 2 * g.ToothThickness / g.PitchRadius
	frames := make([]d2.Set, n)
	for i := 0; i < n; i++ {
		theta := l * float64(i) / float64(n-1)
		m := d2.Rotate(theta).Mul(d2.Translate(r2.Vec{X: -theta * g.PitchRadius, Y: g.PitchRadius}))
		frames[i] = m.ApplySet(profile)
	}
	return frames
}
