package sierpinski

import (
	"github.com/soypat/sierpinski/internal/d2"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// seedTol is the slack on barycentric weights when checking the seed lies
// inside the generating shape.
const seedTol = 1e-9

// ChaosGame2 plays the chaos game on a triangle. The first point is seed,
// every following point lies halfway between its predecessor and a corner
// chosen uniformly at random by src. A nil src uses math/rand's global source.
// The result has exactly count points; count == 0 yields an empty slice.
func ChaosGame2(corners [3]r2.Vec, seed r2.Vec, count int, src Source) ([]r2.Vec, error) {
	if count < 0 {
		return nil, errParam("negative point count")
	} else if count > maxVertices {
		return nil, errParam("point count exceeds 32 bit draw count")
	}
	for _, c := range corners {
		if !d2.IsFinite(c) {
			return nil, errParam("non-finite corner")
		}
	}
	tri := d2.Triangle(corners)
	if tri.Degenerate(0) {
		return nil, errParam("degenerate generating triangle")
	}
	if !d2.IsFinite(seed) || !tri.Contains(seed, seedTol) {
		return nil, errParam("seed point outside generating triangle")
	}
	points := make([]r2.Vec, count)
	if count == 0 {
		return points, nil
	}
	src = sourceOrDefault(src)
	points[0] = seed
	for i := 1; i < count; i++ {
		j := src.Intn(len(corners))
		points[i] = d2.Midpoint(points[i-1], corners[j])
	}
	return points, nil
}

// ChaosGame3 plays the chaos game on a tetrahedron. See ChaosGame2.
func ChaosGame3(corners [4]r3.Vec, seed r3.Vec, count int, src Source) ([]r3.Vec, error) {
	if count < 0 {
		return nil, errParam("negative point count")
	} else if count > maxVertices {
		return nil, errParam("point count exceeds 32 bit draw count")
	}
	for _, c := range corners {
		if !d3.IsFinite(c) {
			return nil, errParam("non-finite corner")
		}
	}
	tet := d3.Tetrahedron(corners)
	if tet.Degenerate(0) {
		return nil, errParam("degenerate generating tetrahedron")
	}
	if !d3.IsFinite(seed) || !tet.Contains(seed, seedTol) {
		return nil, errParam("seed point outside generating tetrahedron")
	}
	points := make([]r3.Vec, count)
	if count == 0 {
		return points, nil
	}
	src = sourceOrDefault(src)
	points[0] = seed
	for i := 1; i < count; i++ {
		j := src.Intn(len(corners))
		points[i] = d3.Midpoint(points[i-1], corners[j])
	}
	return points, nil
}
