package d2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTriangleBarycentric(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	for _, test := range []struct {
		p    r2.Vec
		want [3]float64
		in   bool
	}{
		{p: r2.Vec{X: 0, Y: 0}, want: [3]float64{1, 0, 0}, in: true},
		{p: r2.Vec{X: 2, Y: 0}, want: [3]float64{0, 1, 0}, in: true},
		{p: r2.Vec{X: 1, Y: 1}, want: [3]float64{0, 0.5, 0.5}, in: true},
		{p: r2.Vec{X: 0.5, Y: 0.5}, want: [3]float64{0.5, 0.25, 0.25}, in: true},
		{p: r2.Vec{X: 2, Y: 2}, want: [3]float64{-1, 1, 1}, in: false},
	} {
		got := tri.Barycentric(test.p)
		for i := range got {
			if d := got[i] - test.want[i]; d > 1e-12 || d < -1e-12 {
				t.Errorf("%v: weights %v, want %v", test.p, got, test.want)
				break
			}
		}
		if tri.Contains(test.p, 1e-12) != test.in {
			t.Errorf("%v: Contains=%v, want %v", test.p, !test.in, test.in)
		}
	}
	if tri.SignedArea() != 4 {
		t.Errorf("got doubled area %g, want 4", tri.SignedArea())
	}
	if !(Triangle{{}, {X: 1, Y: 1}, {X: 3, Y: 3}}).Degenerate(0) {
		t.Error("collinear triangle not degenerate")
	}
}

func TestSetBounds(t *testing.T) {
	s := Set{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0, Y: 0}}
	got := s.Bounds()
	want := Box{Min: r2.Vec{X: -3, Y: -2}, Max: r2.Vec{X: 1, Y: 4}}
	if !got.Equals(want, 0) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.Contains(r2.Vec{}) || got.Contains(r2.Vec{X: 2}) {
		t.Error("bad Contains")
	}
}
