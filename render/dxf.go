package render

import (
	"errors"

	"github.com/yofu/dxf"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateDXF writes the gear outline to a DXF drawing file as a single
// closed lightweight polyline on its own layer.
func CreateDXF(path string, outline []r2.Vec) error {
	if len(outline) < 3 {
		return errors.New("outline needs at least 3 vertices")
	}
	// The polyline entity closes itself; drop an explicit closing vertex.
	if n := len(outline); outline[0] == outline[n-1] {
		outline = outline[:n-1]
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer("Gear", dxf.DefaultColor, dxf.DefaultLineType, true)
	vertices := make([][]float64, len(outline))
	for i, v := range outline {
		vertices[i] = []float64{v.X, v.Y, 0}
	}
	d.LwPolyline(true, vertices...)
	return d.SaveAs(path)
}
