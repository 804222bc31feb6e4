// Package config loads scene descriptions for the sierpinski programs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/sierpinski"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kind selects the generator a Scene runs.
type Kind string

const (
	// Chaos2 plays the chaos game on a triangle.
	Chaos2 Kind = "chaos2"
	// Chaos3 plays the chaos game on a tetrahedron.
	Chaos3 Kind = "chaos3"
	// Triangles subdivides a triangle into a Sierpinski gasket.
	Triangles Kind = "triangles"
	// Tetrahedron subdivides a tetrahedron into a Sierpinski tetrahedron.
	Tetrahedron Kind = "tetrahedron"
	// Triangle draws the generating triangle alone.
	Triangle Kind = "triangle"
)

// Dims returns the amount of coordinates per point of the kind, or 0 for an unknown kind.
func (k Kind) Dims() int {
	switch k {
	case Chaos2, Triangles, Triangle:
		return 2
	case Chaos3, Tetrahedron:
		return 3
	}
	return 0
}

// Scene holds the run parameters of one generator.
type Scene struct {
	Kind Kind `toml:"kind"`
	// Corners of the generating triangle (3 points of 2 coordinates) or
	// tetrahedron (4 points of 3 coordinates).
	Corners [][]float64 `toml:"corners"`
	// Seed is the first point of the chaos game. It must lie inside the generating shape.
	Seed []float64 `toml:"seed,omitempty"`
	// Count is the amount of chaos game points.
	Count int `toml:"count,omitempty"`
	// Depth is the subdivision depth.
	Depth int `toml:"depth,omitempty"`
	// RandSeed seeds the chaos game corner choices. 0 seeds from the clock.
	RandSeed int64 `toml:"rand_seed,omitempty"`
	// Output image size in pixels.
	Width  int `toml:"width,omitempty"`
	Height int `toml:"height,omitempty"`
}

// Default returns the scene the standalone demo of kind draws.
func Default(kind Kind) Scene {
	s := Scene{Kind: kind, Width: 800, Height: 800}
	switch kind {
	case Chaos2:
		s.Corners = [][]float64{{-0.5, -0.5}, {0.75, -0.25}, {0, 0.5}}
		s.Seed = []float64{0, 0.25}
		s.Count = 5000
	case Chaos3:
		s.Corners = tetraCorners()
		s.Seed = []float64{0, 0, 0}
		s.Count = 90000
	case Triangles:
		s.Corners = [][]float64{{-0.9, -0.7}, {0.9, 0}, {0, 0.75}}
		s.Depth = 5
	case Tetrahedron:
		s.Corners = tetraCorners()
		s.Depth = 4
	case Triangle:
		s.Corners = [][]float64{{-0.5, -0.5}, {0.75, -0.25}, {0, 0.5}}
	}
	return s
}

func tetraCorners() [][]float64 {
	return [][]float64{{-1, -1, -1}, {1, -1, -1}, {0, 1, -1}, {0, 0, 1}}
}

// Load decodes a TOML scene from r. Fields missing from the document keep
// the Default values of the scene kind.
func Load(r io.Reader) (Scene, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Scene{}, err
	}
	var head struct {
		Kind Kind `toml:"kind"`
	}
	if err = toml.Unmarshal(b, &head); err != nil {
		return Scene{}, fmt.Errorf("decoding scene: %w", err)
	}
	if head.Kind.Dims() == 0 {
		return Scene{}, fmt.Errorf("%w: unknown scene kind %q", sierpinski.ErrInvalidParameter, head.Kind)
	}
	// Decoding over the defaults leaves absent keys untouched.
	s := Default(head.Kind)
	defCorners, defSeed := s.Corners, s.Seed
	s.Corners, s.Seed = nil, nil
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("decoding scene: %w", err)
	}
	if s.Corners == nil {
		s.Corners = defCorners
	}
	if s.Seed == nil {
		s.Seed = defSeed
	}
	return s, s.Validate()
}

// LoadFile opens and decodes the TOML scene at path.
func LoadFile(path string) (Scene, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer fp.Close()
	return Load(fp)
}

// Encode writes s to w as TOML.
func (s Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Validate checks the scene parameters before any generation starts.
// Generator specific checks, such as the seed lying inside the generating
// shape, are left to the generators.
func (s Scene) Validate() error {
	dims := s.Kind.Dims()
	if dims == 0 {
		return paramErr("unknown scene kind %q", s.Kind)
	}
	wantCorners := 3
	if dims == 3 {
		wantCorners = 4
	}
	if len(s.Corners) != wantCorners {
		return paramErr("%s scene needs %d corners, got %d", s.Kind, wantCorners, len(s.Corners))
	}
	for i, c := range s.Corners {
		if len(c) != dims {
			return paramErr("corner %d has %d coordinates, want %d", i, len(c), dims)
		}
	}
	switch s.Kind {
	case Chaos2, Chaos3:
		if len(s.Seed) != dims {
			return paramErr("seed point has %d coordinates, want %d", len(s.Seed), dims)
		}
		if s.Count < 0 {
			return paramErr("negative point count %d", s.Count)
		}
	case Triangles, Tetrahedron:
		if s.Depth < 0 {
			return paramErr("negative subdivision depth %d", s.Depth)
		}
	}
	if s.Width < 0 || s.Height < 0 {
		return paramErr("negative output size")
	}
	return nil
}

func paramErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sierpinski.ErrInvalidParameter}, args...)...)
}

// Corners2 returns the generating triangle of a 2D scene.
func (s Scene) Corners2() (c [3]r2.Vec, err error) {
	if err = s.Validate(); err != nil {
		return c, err
	} else if s.Kind.Dims() != 2 {
		return c, paramErr("%s scene is not 2D", s.Kind)
	}
	for i := range c {
		c[i] = r2.Vec{X: s.Corners[i][0], Y: s.Corners[i][1]}
	}
	return c, nil
}

// Corners3 returns the generating tetrahedron of a 3D scene.
func (s Scene) Corners3() (c [4]r3.Vec, err error) {
	if err = s.Validate(); err != nil {
		return c, err
	} else if s.Kind.Dims() != 3 {
		return c, paramErr("%s scene is not 3D", s.Kind)
	}
	for i := range c {
		c[i] = r3.Vec{X: s.Corners[i][0], Y: s.Corners[i][1], Z: s.Corners[i][2]}
	}
	return c, nil
}

// Seed2 returns the first chaos game point of a 2D scene. Missing
// coordinates are zero.
func (s Scene) Seed2() (p r2.Vec) {
	if len(s.Seed) > 1 {
		p.X, p.Y = s.Seed[0], s.Seed[1]
	}
	return p
}

// Seed3 returns the first chaos game point of a 3D scene. Missing
// coordinates are zero.
func (s Scene) Seed3() (p r3.Vec) {
	if len(s.Seed) > 2 {
		p.X, p.Y, p.Z = s.Seed[0], s.Seed[1], s.Seed[2]
	}
	return p
}

// Source returns the random source for the chaos game corner choices.
func (s Scene) Source() sierpinski.Source {
	seed := s.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

var errWrongDims = errors.New("scene dimension does not match generator")

// Generate2 runs the generator of a 2D scene and tags the result with its draw mode.
func (s Scene) Generate2() (sierpinski.Batch2, error) {
	corners, err := s.Corners2()
	if err != nil {
		return sierpinski.Batch2{}, err
	}
	switch s.Kind {
	case Chaos2:
		v, err := sierpinski.ChaosGame2(corners, s.Seed2(), s.Count, s.Source())
		return sierpinski.Batch2{Mode: sierpinski.DrawPoints, V: v}, err
	case Triangles:
		v, err := sierpinski.Triangles2(corners, s.Depth)
		return sierpinski.Batch2{Mode: sierpinski.DrawTriangles, V: v}, err
	case Triangle:
		v, err := sierpinski.Triangles2(corners, 0)
		return sierpinski.Batch2{Mode: sierpinski.DrawTriangles, V: v}, err
	}
	return sierpinski.Batch2{}, errWrongDims
}

// Generate3 runs the generator of a 3D scene and tags the result with its draw mode.
func (s Scene) Generate3() (sierpinski.Batch3, error) {
	corners, err := s.Corners3()
	if err != nil {
		return sierpinski.Batch3{}, err
	}
	switch s.Kind {
	case Chaos3:
		v, err := sierpinski.ChaosGame3(corners, s.Seed3(), s.Count, s.Source())
		return sierpinski.Batch3{Mode: sierpinski.DrawPoints, V: v}, err
	case Tetrahedron:
		v, err := sierpinski.Tetrahedron(corners, s.Depth)
		return sierpinski.Batch3{Mode: sierpinski.DrawTriangles, V: v}, err
	}
	return sierpinski.Batch3{}, errWrongDims
}
