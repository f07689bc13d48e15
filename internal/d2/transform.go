package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation
// including translation, rotation and reflection.
type Transform struct {
	data [3 * 3]float64 // row major, homogeneous coordinates.
}

// Identity returns the identity transform.
func Identity() Transform {
	var t Transform
	t.Set(0, 0, 1)
	t.Set(1, 1, 1)
	t.Set(2, 2, 1)
	return t
}

// Rotate returns a rotation by a radians about the origin, counterclockwise.
func Rotate(a float64) Transform {
	c, s := math.Cos(a), math.Sin(a)
	t := Identity()
	t.Set(0, 0, c)
	t.Set(0, 1, -s)
	t.Set(1, 0, s)
	t.Set(1, 1, c)
	return t
}

// Translate returns a translation by v.
func Translate(v r2.Vec) Transform {
	t := Identity()
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

// MirrorX returns the reflection about the vertical axis (x -> -x).
func MirrorX() Transform {
	t := Identity()
	t.Set(0, 0, -1)
	return t
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

// ApplyPos transforms a position vector.
func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet transforms a set of position vectors into a new set.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i, v := range s {
		out[i] = t.ApplyPos(v)
	}
	return out
}
