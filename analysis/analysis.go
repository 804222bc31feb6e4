// Package analysis measures how generated point sets relate to the ideal
// Sierpinski attractor. It backs the statistical claims made about chaos game
// output: every point lies in a finite-depth gasket and the cloud approaches
// the subdivision mesh as more points are generated.
package analysis

import (
	"errors"
	"math"

	"github.com/soypat/sierpinski/internal/d2"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var errEmptySet = errors.New("empty point set")

// InGasket2 reports whether p lies in the depth-th level Sierpinski gasket
// built on corners, that is, in one of the 3^depth corner sub-triangles kept
// by midpoint subdivision. tol is the barycentric slack used at every level.
func InGasket2(p r2.Vec, corners [3]r2.Vec, depth int, tol float64) bool {
	tri := d2.Triangle(corners)
	if !tri.Contains(p, tol) {
		return false
	}
	if depth <= 0 {
		return true
	}
	a, b, c := corners[0], corners[1], corners[2]
	ab, ac, bc := tri.Midpoints()
	return InGasket2(p, [3]r2.Vec{a, ab, ac}, depth-1, tol) ||
		InGasket2(p, [3]r2.Vec{ab, b, bc}, depth-1, tol) ||
		InGasket2(p, [3]r2.Vec{bc, ac, c}, depth-1, tol)
}

// InGasket3 is the tetrahedral counterpart of InGasket2.
func InGasket3(p r3.Vec, corners [4]r3.Vec, depth int, tol float64) bool {
	if !d3.Tetrahedron(corners).Contains(p, tol) {
		return false
	}
	if depth <= 0 {
		return true
	}
	a, b, c, d := corners[0], corners[1], corners[2], corners[3]
	ab, ac, ad := d3.Midpoint(a, b), d3.Midpoint(a, c), d3.Midpoint(a, d)
	bc, bd, cd := d3.Midpoint(b, c), d3.Midpoint(b, d), d3.Midpoint(c, d)
	return InGasket3(p, [4]r3.Vec{a, ab, ac, ad}, depth-1, tol) ||
		InGasket3(p, [4]r3.Vec{ab, b, bc, bd}, depth-1, tol) ||
		InGasket3(p, [4]r3.Vec{ac, bc, c, cd}, depth-1, tol) ||
		InGasket3(p, [4]r3.Vec{ad, bd, cd, d}, depth-1, tol)
}

// Coverage2 returns the largest distance from a reference vertex to its
// nearest neighbour in cloud. A small coverage means the cloud has visited
// the neighbourhood of every reference vertex.
func Coverage2(cloud, reference []r2.Vec) (float64, error) {
	if len(cloud) == 0 || len(reference) == 0 {
		return 0, errEmptySet
	}
	pts := make(kdtree.Points, len(cloud))
	for i, p := range cloud {
		pts[i] = kdtree.Point{p.X, p.Y}
	}
	tree := kdtree.New(pts, false)
	worst := 0.0
	for _, r := range reference {
		_, dist2 := tree.Nearest(kdtree.Point{r.X, r.Y})
		worst = math.Max(worst, dist2)
	}
	return math.Sqrt(worst), nil
}

// Coverage3 is the 3D counterpart of Coverage2.
func Coverage3(cloud, reference []r3.Vec) (float64, error) {
	if len(cloud) == 0 || len(reference) == 0 {
		return 0, errEmptySet
	}
	pts := make(kdtree.Points, len(cloud))
	for i, p := range cloud {
		pts[i] = kdtree.Point{p.X, p.Y, p.Z}
	}
	tree := kdtree.New(pts, false)
	worst := 0.0
	for _, r := range reference {
		_, dist2 := tree.Nearest(kdtree.Point{r.X, r.Y, r.Z})
		worst = math.Max(worst, dist2)
	}
	return math.Sqrt(worst), nil
}

// Hausdorff2 returns the Hausdorff distance between two point sets.
func Hausdorff2(a, b []r2.Vec) (float64, error) {
	ab, err := Coverage2(a, b)
	if err != nil {
		return 0, err
	}
	ba, err := Coverage2(b, a)
	if err != nil {
		return 0, err
	}
	return math.Max(ab, ba), nil
}

// Hausdorff3 returns the Hausdorff distance between two point sets.
func Hausdorff3(a, b []r3.Vec) (float64, error) {
	ab, err := Coverage3(a, b)
	if err != nil {
		return 0, err
	}
	ba, err := Coverage3(b, a)
	if err != nil {
		return 0, err
	}
	return math.Max(ab, ba), nil
}
