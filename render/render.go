// Package render serializes generated gear outlines to interchange
// formats: DXF drawings, plain coordinate listings, extruded binary STL
// meshes and PNG preview plots.
package render

import (
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Extrude converts a closed gear outline into a solid prism mesh of the
// given thickness, centered on the XY plane. The outline must wind
// counterclockwise and enclose the origin with every boundary point visible
// from it, which holds for all generated gear outlines; the top and bottom
// faces are built as triangle fans about the gear center.
func Extrude(outline []r2.Vec, thickness float64) []Triangle3 {
	if thickness <= 0 {
		panic("non-positive extrusion thickness")
	}
	verts := d2.Set(outline)
	if n := len(verts); n > 1 && d2.EqualWithin(verts[0], verts[n-1], 1e-12) {
		verts = verts[:n-1] // drop closing duplicate
	}
	if len(verts) < 3 {
		panic("outline needs at least 3 distinct vertices")
	}
	var (
		h    = thickness / 2
		m    = len(verts)
		tris = make([]Triangle3, 0, 4*m)
		cTop = r3.Vec{Z: h}
		cBot = r3.Vec{Z: -h}
	)
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		var (
			bi = r3.Vec{X: verts[i].X, Y: verts[i].Y, Z: -h}
			bj = r3.Vec{X: verts[j].X, Y: verts[j].Y, Z: -h}
			ti = r3.Vec{X: verts[i].X, Y: verts[i].Y, Z: h}
			tj = r3.Vec{X: verts[j].X, Y: verts[j].Y, Z: h}
		)
		// side wall, outward facing
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{bi, bj, tj}},
			Triangle3{V: [3]r3.Vec{bi, tj, ti}},
			// top and bottom fans
			Triangle3{V: [3]r3.Vec{cTop, ti, tj}},
			Triangle3{V: [3]r3.Vec{cBot, bj, bi}},
		)
	}
	return tris
}
