package render_test

import (
	"bufio"
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/gears"
	"github.com/soypat/gears/render"
)

func testGear(t *testing.T) *gears.Gear {
	t.Helper()
	g, err := gears.Generate(gears.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestWriteText(t *testing.T) {
	g := testGear(t)
	var b bytes.Buffer
	if err := render.WriteText(&b, g.Outline); err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(&b)
	lines := 0
	for sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) != 2 {
			t.Fatalf("line %d: got %d fields, want 2", lines, len(fields))
		}
		lines++
	}
	if lines != len(g.Outline) {
		t.Errorf("wrote %d lines, want %d", lines, len(g.Outline))
	}
}

func TestExtrudeWriteSTL(t *testing.T) {
	g := testGear(t)
	const thickness = 6.0
	model := render.Extrude(g.Outline, thickness)
	// Closed prism: 2 wall triangles plus a top and a bottom fan triangle
	// per boundary segment.
	segments := len(g.Outline) - 1
	if len(model) != 4*segments {
		t.Fatalf("got %d triangles, want %d", len(model), 4*segments)
	}
	for i, tri := range model {
		for _, v := range tri.V {
			if math.Abs(v.Z) != thickness/2 {
				t.Fatalf("triangle %d vertex %v off the prism faces", i, v)
			}
		}
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if want := 84 + 50*len(model); b.Len() != want {
		t.Errorf("STL is %d bytes, want %d", b.Len(), want)
	}
}

func TestCreateDXF(t *testing.T) {
	g := testGear(t)
	path := filepath.Join(t.TempDir(), "gear.dxf")
	if err := render.CreateDXF(path, g.Outline); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty DXF file")
	}
}

func TestWritePNG(t *testing.T) {
	g := testGear(t)
	var b bytes.Buffer
	if err := render.WritePNG(&b, g); err != nil {
		t.Fatal(err)
	}
	// PNG magic number.
	if b.Len() < 8 || !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not look like a PNG")
	}
}
