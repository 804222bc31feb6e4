package sierpinski

import (
	"math"

	"github.com/soypat/sierpinski/internal/d2"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// maxVertices is the largest vertex count a 32 bit signed draw count can address.
	maxVertices = math.MaxInt32
	// MaxTriangleDepth is the deepest subdivision Triangles2 accepts: 3*3^18 vertices.
	MaxTriangleDepth = 18
	// MaxTetrahedronDepth is the deepest subdivision Tetrahedron accepts: 12*4^13 vertices.
	MaxTetrahedronDepth = 13
)

// Triangles2Len returns the number of vertices Triangles2 generates for depth, 3*3^depth.
func Triangles2Len(depth int) (int, error) {
	if depth < 0 {
		return 0, errParam("negative subdivision depth")
	} else if depth > MaxTriangleDepth {
		return 0, errParam("subdivision depth overflows 32 bit vertex count")
	}
	n := 3
	for i := 0; i < depth; i++ {
		n *= 3
	}
	return n, nil
}

// Triangles2 builds a Sierpinski gasket by recursive midpoint subdivision of
// corners and returns it as a triangle list. Each level splits a triangle
// [a,b,c] into [a,ab,ac], [ab,b,bc] and [bc,ac,c], where xy is the midpoint of
// edge xy; the center triangle is left out. At depth 0 the corners are returned
// unchanged and in order.
func Triangles2(corners [3]r2.Vec, depth int) ([]r2.Vec, error) {
	n, err := Triangles2Len(depth)
	if err != nil {
		return nil, err
	}
	buf := make([]r2.Vec, n)
	subdivide2(buf, 0, n, corners)
	return buf, nil
}

// subdivide2 writes the gasket of t into buf[lo:hi]. The recursion depth is
// implied by the range length; each child owns a disjoint third of the range.
func subdivide2(buf []r2.Vec, lo, hi int, t [3]r2.Vec) {
	if hi-lo == 3 {
		buf[lo], buf[lo+1], buf[lo+2] = t[0], t[1], t[2]
		return
	}
	ab, ac, bc := d2.Triangle(t).Midpoints()
	third := (hi - lo) / 3
	subdivide2(buf, lo, lo+third, [3]r2.Vec{t[0], ab, ac})
	subdivide2(buf, lo+third, lo+2*third, [3]r2.Vec{ab, t[1], bc})
	subdivide2(buf, lo+2*third, hi, [3]r2.Vec{bc, ac, t[2]})
}

// AppendTriangles2 appends the gasket Triangles2 would return to dst and
// returns the extended slice. Sub-triangle lists are concatenated in the same
// order so the appended vertices equal the output of Triangles2.
func AppendTriangles2(dst []r2.Vec, corners [3]r2.Vec, depth int) ([]r2.Vec, error) {
	if _, err := Triangles2Len(depth); err != nil {
		return dst, err
	}
	return appendSubdivided2(dst, corners, depth), nil
}

func appendSubdivided2(dst []r2.Vec, t [3]r2.Vec, depth int) []r2.Vec {
	if depth == 0 {
		return append(dst, t[0], t[1], t[2])
	}
	ab, ac, bc := d2.Triangle(t).Midpoints()
	dst = appendSubdivided2(dst, [3]r2.Vec{t[0], ab, ac}, depth-1)
	dst = appendSubdivided2(dst, [3]r2.Vec{ab, t[1], bc}, depth-1)
	return appendSubdivided2(dst, [3]r2.Vec{bc, ac, t[2]}, depth-1)
}

// TetrahedronLen returns the number of vertices Tetrahedron generates for depth, 12*4^depth.
func TetrahedronLen(depth int) (int, error) {
	if depth < 0 {
		return 0, errParam("negative subdivision depth")
	} else if depth > MaxTetrahedronDepth {
		return 0, errParam("subdivision depth overflows 32 bit vertex count")
	}
	return 12 << (2 * depth), nil
}

// Tetrahedron builds a Sierpinski tetrahedron by recursively replacing a
// tetrahedron with the four half-size tetrahedra at its corners. Every leaf
// tetrahedron is emitted as its four faces, so the result is a triangle list
// of 12*4^depth vertices. Faces wind counter-clockwise seen from outside;
// corners with negative orientation have b and c swapped to achieve this.
func Tetrahedron(corners [4]r3.Vec, depth int) ([]r3.Vec, error) {
	n, err := TetrahedronLen(depth)
	if err != nil {
		return nil, err
	}
	if d3.Tetrahedron(corners).SignedVolume() < 0 {
		corners[1], corners[2] = corners[2], corners[1]
	}
	buf := make([]r3.Vec, n)
	subdivide3(buf, 0, n, corners)
	return buf, nil
}

func subdivide3(buf []r3.Vec, lo, hi int, t [4]r3.Vec) {
	a, b, c, d := t[0], t[1], t[2], t[3]
	if hi-lo == 12 {
		copy(buf[lo:hi], []r3.Vec{
			a, c, b,
			a, b, d,
			a, d, c,
			b, c, d,
		})
		return
	}
	ab, ac, ad := d3.Midpoint(a, b), d3.Midpoint(a, c), d3.Midpoint(a, d)
	bc, bd, cd := d3.Midpoint(b, c), d3.Midpoint(b, d), d3.Midpoint(c, d)
	quarter := (hi - lo) / 4
	subdivide3(buf, lo, lo+quarter, [4]r3.Vec{a, ab, ac, ad})
	subdivide3(buf, lo+quarter, lo+2*quarter, [4]r3.Vec{ab, b, bc, bd})
	subdivide3(buf, lo+2*quarter, lo+3*quarter, [4]r3.Vec{ac, bc, c, cd})
	subdivide3(buf, lo+3*quarter, hi, [4]r3.Vec{ad, bd, cd, d})
}
