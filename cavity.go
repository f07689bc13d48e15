package gears

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// toothCavity builds the full symmetric gap cut by one cutter pass.
// Consecutive sweep frames are joined by the convex hull of their combined
// 8 points, the hulls are unioned into one flank sweep, and the sweep is
// unioned with its own mirror image about the vertical axis so the cavity
// spans both flanks of the tooth gap.
func toothCavity(g Geometry, frames int) (geom.Geometry, error) {
	prof := rackProfile(g)
	swept := sweepFrames(prof, g, frames)

	var cavity geom.Geometry
	for i := 1; i < len(swept); i++ {
		hull, err := hullOf(swept[i-1], swept[i])
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("gears: sweep frame %d: %w", i, err)
		}
		if i == 1 {
			cavity = hull
			continue
		}
		cavity, err = geom.Union(cavity, hull)
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("gears: joining sweep frame %d: %w", i, err)
		}
	}

	mirrored, err := mirroredX(cavity)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("gears: mirroring cavity: %w", err)
	}
	cavity, err = geom.Union(cavity, mirrored)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("gears: joining cavity flanks: %w", err)
	}
	// A disconnected result means consecutive hulls failed to overlap:
	// the frame spacing is too wide for the angular range.
	if cavity.Type() != geom.TypePolygon {
		return geom.Geometry{}, ErrDegenerateSweep
	}
	return cavity, nil
}
