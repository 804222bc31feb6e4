// Package sierpinski generates Sierpinski point clouds and triangle meshes.
//
// Two families of generators are provided. The chaos game produces a point
// cloud by repeatedly jumping halfway towards a randomly chosen corner of a
// generating triangle (2D) or tetrahedron (3D). Midpoint subdivision produces
// an explicit triangle list by recursively keeping the corner sub-triangles
// (or sub-tetrahedra) of the generating shape.
//
// Generators return plain ordered vertex slices. Batch2 and Batch3 tag a slice
// with the DrawMode a renderer should use to interpret it.
package sierpinski

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DrawMode is the interpretation a renderer applies to a vertex sequence.
type DrawMode uint8

const (
	// DrawPoints draws every vertex as an unconnected point.
	DrawPoints DrawMode = iota + 1
	// DrawTriangles draws consecutive vertex triples as solid triangles.
	DrawTriangles
)

func (m DrawMode) String() string {
	switch m {
	case DrawPoints:
		return "points"
	case DrawTriangles:
		return "triangles"
	}
	return "unknown"
}

// Source provides the uniformly distributed corner choices of the chaos game.
// *math/rand.Rand implements Source.
type Source interface {
	// Intn returns a uniformly distributed integer in [0,n).
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

func sourceOrDefault(src Source) Source {
	if src == nil {
		return globalSource{}
	}
	return src
}

// Batch2 is an ordered sequence of 2D vertices and the mode to draw them with.
type Batch2 struct {
	Mode DrawMode
	V    []r2.Vec
}

// Validate checks the batch can be handed to a renderer.
func (b Batch2) Validate() error {
	return validateBatch(b.Mode, len(b.V))
}

// Batch3 is an ordered sequence of 3D vertices and the mode to draw them with.
type Batch3 struct {
	Mode DrawMode
	V    []r3.Vec
}

// Validate checks the batch can be handed to a renderer.
func (b Batch3) Validate() error {
	return validateBatch(b.Mode, len(b.V))
}

func validateBatch(mode DrawMode, n int) error {
	switch {
	case mode != DrawPoints && mode != DrawTriangles:
		return errParam("unknown draw mode")
	case n == 0:
		return errParam("empty vertex batch")
	case n > maxVertices:
		return errParam("vertex count exceeds 32 bit draw count")
	case mode == DrawTriangles && n%3 != 0:
		return errParam("triangle batch length not a multiple of 3")
	}
	return nil
}
