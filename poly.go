package gears

import (
	"errors"
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// diskSegments is the number of blank perimeter segments per tooth. Keeping
// the segment count a multiple of the tooth count makes the finished
// outline exactly N-fold symmetric.
const diskSegments = 16

const closeTolerance = 1e-12

// seqFromSet packs a vertex set into a coordinate sequence, appending the
// first vertex at the end when close is set and the loop is not yet closed.
func seqFromSet(s d2.Set, closeLoop bool) geom.Sequence {
	n := len(s)
	closed := n > 0 && d2.EqualWithin(s[0], s[n-1], closeTolerance)
	floats := make([]float64, 0, 2*(n+1))
	for _, v := range s {
		floats = append(floats, v.X, v.Y)
	}
	if closeLoop && !closed {
		floats = append(floats, s[0].X, s[0].Y)
	}
	return geom.NewSequence(floats, geom.DimXY)
}

func setFromSeq(seq geom.Sequence) d2.Set {
	n := seq.Length()
	s := make(d2.Set, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		s[i] = r2.Vec{X: xy.X, Y: xy.Y}
	}
	return s
}

// polygonFromLoop builds a validated polygon from a closed vertex loop.
func polygonFromLoop(loop d2.Set) (geom.Geometry, error) {
	ring := geom.NewLineString(seqFromSet(loop, true))
	poly := geom.NewPolygon([]geom.LineString{ring})
	if err := poly.Validate(); err != nil {
		return geom.Geometry{}, err
	}
	return poly.AsGeometry(), nil
}

// hullOf returns the convex hull of the combined vertices of the given
// sets.
func hullOf(sets ...d2.Set) (geom.Geometry, error) {
	var all d2.Set
	for _, s := range sets {
		all = append(all, s...)
	}
	pts := geom.NewLineString(seqFromSet(all, false))
	hull := pts.AsGeometry().ConvexHull()
	if hull.Type() != geom.TypePolygon {
		return geom.Geometry{}, fmt.Errorf("degenerate convex hull of %d points", len(all))
	}
	return hull, nil
}

// disk returns a regular n-gon inscribed in the circle of the given radius,
// centered on the origin with counterclockwise winding.
func disk(radius float64, n int) (geom.Geometry, error) {
	loop := make(d2.Set, n)
	for i := 0; i < n; i++ {
		loop[i] = d2.Pol{R: radius, Theta: 2 * math.Pi * float64(i) / float64(n)}.PolarToCartesian()
	}
	return polygonFromLoop(loop)
}

// transformed rebuilds g with every vertex mapped through t. Rigid
// transforms preserve validity so the rings are reassembled directly.
func transformed(g geom.Geometry, t d2.Transform) (geom.Geometry, error) {
	switch g.Type() {
	case geom.TypePolygon:
		poly, _ := g.AsPolygon()
		p, err := transformedPolygon(poly, t)
		if err != nil {
			return geom.Geometry{}, err
		}
		return p.AsGeometry(), nil
	case geom.TypeMultiPolygon:
		mp, _ := g.AsMultiPolygon()
		polys := make([]geom.Polygon, mp.NumPolygons())
		for i := range polys {
			p, err := transformedPolygon(mp.PolygonN(i), t)
			if err != nil {
				return geom.Geometry{}, err
			}
			polys[i] = p
		}
		return geom.NewMultiPolygon(polys).AsGeometry(), nil
	}
	return geom.Geometry{}, fmt.Errorf("cannot transform geometry of type %s", g.Type())
}

func transformedPolygon(p geom.Polygon, t d2.Transform) (geom.Polygon, error) {
	rings := make([]geom.LineString, 1+p.NumInteriorRings())
	rings[0] = transformedRing(p.ExteriorRing(), t)
	for i := 1; i < len(rings); i++ {
		rings[i] = transformedRing(p.InteriorRingN(i-1), t)
	}
	out := geom.NewPolygon(rings)
	if err := out.Validate(); err != nil {
		return geom.Polygon{}, err
	}
	return out, nil
}

func transformedRing(ring geom.LineString, t d2.Transform) geom.LineString {
	return geom.NewLineString(seqFromSet(t.ApplySet(setFromSeq(ring.Coordinates())), true))
}

func rotated(g geom.Geometry, a float64) (geom.Geometry, error) {
	return transformed(g, d2.Rotate(a))
}

func mirroredX(g geom.Geometry) (geom.Geometry, error) {
	return transformed(g, d2.MirrorX())
}

// exteriorLoop extracts the closed exterior boundary of a polygonal result
// in counterclockwise order.
func exteriorLoop(g geom.Geometry) ([]r2.Vec, error) {
	if g.IsEmpty() {
		return nil, errors.New("gears: cutting consumed the whole blank")
	}
	poly, ok := g.AsPolygon()
	if !ok {
		return nil, fmt.Errorf("gears: cut result is %s, want a single polygon", g.Type())
	}
	loop := setFromSeq(poly.ExteriorRing().Coordinates())
	if len(loop) < 4 {
		return nil, errors.New("gears: degenerate gear boundary")
	}
	if signedArea(loop) < 0 {
		reverse(loop)
	}
	return loop, nil
}

// signedArea is the shoelace area of a closed loop, positive for
// counterclockwise winding.
func signedArea(loop d2.Set) float64 {
	var sum float64
	for i := 0; i < len(loop)-1; i++ {
		a, b := loop[i], loop[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func reverse(s d2.Set) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
