package d2

import "gonum.org/v1/gonum/spatial/r2"

// Triangle is a 2D triangle given by its corners.
type Triangle [3]r2.Vec

// SignedArea returns twice the signed area of the triangle.
// It is positive for counter-clockwise winding.
func (t Triangle) SignedArea() float64 {
	return cross(r2.Sub(t[1], t[0]), r2.Sub(t[2], t[0]))
}

// Degenerate returns true if twice the triangle area is within tol of zero.
func (t Triangle) Degenerate(tol float64) bool {
	a := t.SignedArea()
	return a <= tol && a >= -tol
}

// Barycentric returns the barycentric weights of p with respect to the
// triangle corners. The weights sum to one. The triangle must not be degenerate.
func (t Triangle) Barycentric(p r2.Vec) [3]float64 {
	area := t.SignedArea()
	wa := Triangle{p, t[1], t[2]}.SignedArea() / area
	wb := Triangle{t[0], p, t[2]}.SignedArea() / area
	return [3]float64{wa, wb, 1 - wa - wb}
}

// Contains returns true if p lies inside the triangle or on its boundary.
// tol is the slack allowed on each barycentric weight.
func (t Triangle) Contains(p r2.Vec, tol float64) bool {
	w := t.Barycentric(p)
	return w[0] >= -tol && w[1] >= -tol && w[2] >= -tol
}

// Midpoints returns the edge midpoints ab, ac and bc of the triangle.
func (t Triangle) Midpoints() (ab, ac, bc r2.Vec) {
	return Midpoint(t[0], t[1]), Midpoint(t[0], t[2]), Midpoint(t[1], t[2])
}
