package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTransform(t *testing.T) {
	const tol = 1e-12
	p := r2.Vec{X: 1, Y: 0}
	got := Rotate(math.Pi / 2).ApplyPos(p)
	if !EqualWithin(got, r2.Vec{X: 0, Y: 1}, tol) {
		t.Errorf("rotate pi/2: got %v", got)
	}
	got = Translate(r2.Vec{X: -2, Y: 3}).ApplyPos(p)
	if !EqualWithin(got, r2.Vec{X: -1, Y: 3}, tol) {
		t.Errorf("translate: got %v", got)
	}
	got = MirrorX().ApplyPos(r2.Vec{X: 2, Y: 5})
	if !EqualWithin(got, r2.Vec{X: -2, Y: 5}, tol) {
		t.Errorf("mirror: got %v", got)
	}
	// Composition applies the rightmost transform first.
	m := Rotate(math.Pi / 2).Mul(Translate(r2.Vec{X: 1, Y: 0}))
	got = m.ApplyPos(r2.Vec{})
	if !EqualWithin(got, r2.Vec{X: 0, Y: 1}, tol) {
		t.Errorf("compose: got %v", got)
	}
}
