package render

import (
	"errors"
	"io"

	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle. Vertices wind counter-clockwise seen from the
// side its normal points to.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	return r3.Unit(d3.Normal(t[0], t[1], t[2]))
}

// Degenerate returns true if two vertices of the triangle are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Renderer streams the triangles of a model.
type Renderer interface {
	// ReadTriangles writes triangles into t and returns the amount written.
	// It returns io.EOF once the model has been completely read.
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangles groups a flat triangle list into triangles.
func Triangles(vertices []r3.Vec) ([]Triangle3, error) {
	if len(vertices)%3 != 0 {
		return nil, errors.New("triangle list length not a multiple of 3")
	}
	model := make([]Triangle3, len(vertices)/3)
	for i := range model {
		copy(model[i][:], vertices[3*i:3*i+3])
	}
	return model, nil
}

// NewMeshRenderer returns a Renderer that streams the triangles of a flat
// triangle list such as the output of sierpinski.Tetrahedron. vertices is not copied.
func NewMeshRenderer(vertices []r3.Vec) (Renderer, error) {
	if len(vertices) == 0 {
		return nil, errors.New("empty triangle list")
	} else if len(vertices)%3 != 0 {
		return nil, errors.New("triangle list length not a multiple of 3")
	}
	return &meshRenderer{v: vertices}, nil
}

type meshRenderer struct {
	v []r3.Vec
}

func (m *meshRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	for n < len(dst) && len(m.v) > 0 {
		copy(dst[n][:], m.v[:3])
		m.v = m.v[3:]
		n++
	}
	if len(m.v) == 0 {
		return n, io.EOF
	}
	return n, nil
}
