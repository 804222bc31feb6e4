package d3

import "gonum.org/v1/gonum/spatial/r3"

// Tetrahedron is a 3D tetrahedron given by its corners.
type Tetrahedron [4]r3.Vec

// SignedVolume returns six times the signed volume of the tetrahedron.
// It is positive when d lies on the side of triangle abc its
// counter-clockwise normal points away from.
func (t Tetrahedron) SignedVolume() float64 {
	return r3.Dot(r3.Sub(t[1], t[0]), r3.Cross(r3.Sub(t[2], t[0]), r3.Sub(t[3], t[0])))
}

// Degenerate returns true if six times the volume is within tol of zero.
func (t Tetrahedron) Degenerate(tol float64) bool {
	v := t.SignedVolume()
	return v <= tol && v >= -tol
}

// Barycentric returns the barycentric weights of p with respect to the
// tetrahedron corners. The weights sum to one. The tetrahedron must not be degenerate.
func (t Tetrahedron) Barycentric(p r3.Vec) [4]float64 {
	vol := t.SignedVolume()
	var w [4]float64
	sum := 0.0
	for i := 0; i < 3; i++ {
		sub := t
		sub[i] = p
		w[i] = sub.SignedVolume() / vol
		sum += w[i]
	}
	w[3] = 1 - sum
	return w
}

// Contains returns true if p lies inside the tetrahedron or on its boundary.
// tol is the slack allowed on each barycentric weight.
func (t Tetrahedron) Contains(p r3.Vec, tol float64) bool {
	for _, w := range t.Barycentric(p) {
		if w < -tol {
			return false
		}
	}
	return true
}

// Normal returns the unnormalized normal of triangle abc following the right hand rule.
func Normal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}
