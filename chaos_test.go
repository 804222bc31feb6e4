package sierpinski_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/internal/d2"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// sequence is a Source that replays a fixed list of corner choices.
type sequence struct {
	choices []int
	i       int
}

func (s *sequence) Intn(n int) int {
	c := s.choices[s.i%len(s.choices)]
	s.i++
	return c
}

var chaosCorners = [3]r2.Vec{{X: -0.5, Y: -0.5}, {X: 0.75, Y: -0.25}, {X: 0.0, Y: 0.5}}

func TestChaosGame2SecondPoint(t *testing.T) {
	seed := r2.Vec{X: 0, Y: 0.25}
	want := []r2.Vec{
		{X: -0.25, Y: -0.125},
		{X: 0.375, Y: 0.0},
		{X: 0.0, Y: 0.375},
	}
	for j := range chaosCorners {
		got, err := sierpinski.ChaosGame2(chaosCorners, seed, 2, &sequence{choices: []int{j}})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d points, want 2", len(got))
		}
		if got[0] != seed {
			t.Errorf("first point %v, want seed %v", got[0], seed)
		}
		if got[1] != want[j] {
			t.Errorf("corner %d: second point %v, want %v", j, got[1], want[j])
		}
	}
}

func TestChaosGame2Sequence(t *testing.T) {
	const count = 20
	seed := r2.Vec{X: 0, Y: 0.25}
	src := &sequence{choices: []int{2, 0, 1, 1, 0, 2, 2}}
	got, err := sierpinski.ChaosGame2(chaosCorners, seed, count, src)
	if err != nil {
		t.Fatal(err)
	}
	replay := &sequence{choices: src.choices}
	prev := seed
	for i := 1; i < count; i++ {
		c := chaosCorners[replay.Intn(3)]
		want := r2.Vec{X: (prev.X + c.X) / 2, Y: (prev.Y + c.Y) / 2}
		if got[i] != want {
			t.Fatalf("point %d: got %v, want %v", i, got[i], want)
		}
		prev = want
	}
}

func TestChaosGame2Properties(t *testing.T) {
	const count = 5000
	seed := r2.Vec{X: 0, Y: 0.25}
	rng := rand.New(rand.NewSource(1))
	got, err := sierpinski.ChaosGame2(chaosCorners, seed, count, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != count {
		t.Fatalf("got %d points, want %d", len(got), count)
	}
	if got[0] != seed {
		t.Fatal("first point is not the seed")
	}
	tri := d2.Triangle(chaosCorners)
	hits := [3]int{}
	for i := 1; i < count; i++ {
		if !tri.Contains(got[i], 1e-12) {
			t.Fatalf("point %d %v outside generating triangle", i, got[i])
		}
		jump := r2.Sub(r2.Scale(2, got[i]), got[i-1])
		found := false
		for j, c := range chaosCorners {
			if d2.EqualWithin(jump, c, 1e-12) {
				hits[j]++
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("point %d is not a midpoint towards any corner: %v", i, jump)
		}
	}
	for j, h := range hits {
		// Uniform choice: expect about a third of the jumps per corner.
		if math.Abs(float64(h)/(count-1)-1./3) > 0.05 {
			t.Errorf("corner %d chosen %d/%d times", j, h, count-1)
		}
	}
}

func TestChaosGameCountEdges(t *testing.T) {
	seed := r2.Vec{X: 0, Y: 0.25}
	got, err := sierpinski.ChaosGame2(chaosCorners, seed, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("count 0: want empty non-nil slice, got %v", got)
	}
	got, err = sierpinski.ChaosGame2(chaosCorners, seed, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != seed {
		t.Errorf("count 1: want [seed], got %v", got)
	}
	got, err = sierpinski.ChaosGame2(chaosCorners, seed, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 100 {
		t.Errorf("nil source: got %d points", len(got))
	}
}

func TestChaosGameInvalid(t *testing.T) {
	seed := r2.Vec{X: 0, Y: 0.25}
	degenerate := [3]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	withNaN := chaosCorners
	withNaN[1].X = math.NaN()
	for _, test := range []struct {
		name    string
		corners [3]r2.Vec
		seed    r2.Vec
		count   int
	}{
		{"negative count", chaosCorners, seed, -1},
		{"seed outside", chaosCorners, r2.Vec{X: 2, Y: 2}, 10},
		{"seed NaN", chaosCorners, r2.Vec{X: math.NaN()}, 10},
		{"degenerate", degenerate, r2.Vec{X: 1, Y: 1}, 10},
		{"NaN corner", withNaN, seed, 10},
	} {
		_, err := sierpinski.ChaosGame2(test.corners, test.seed, test.count, nil)
		if !errors.Is(err, sierpinski.ErrInvalidParameter) {
			t.Errorf("%s: want ErrInvalidParameter, got %v", test.name, err)
		}
	}
	_, err := sierpinski.ChaosGame3(tetraCorners, r3.Vec{X: 5}, 10, nil)
	if !errors.Is(err, sierpinski.ErrInvalidParameter) {
		t.Errorf("3D seed outside: want ErrInvalidParameter, got %v", err)
	}
	flat := tetraCorners
	flat[3] = r3.Vec{X: 0, Y: 0, Z: -1}
	_, err = sierpinski.ChaosGame3(flat, r3.Vec{Z: -1}, 10, nil)
	if !errors.Is(err, sierpinski.ErrInvalidParameter) {
		t.Errorf("3D degenerate: want ErrInvalidParameter, got %v", err)
	}
}

func TestChaosGame3Properties(t *testing.T) {
	const count = 20000
	rng := rand.New(rand.NewSource(3))
	got, err := sierpinski.ChaosGame3(tetraCorners, r3.Vec{}, count, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != count || got[0] != (r3.Vec{}) {
		t.Fatalf("bad output start: len=%d first=%v", len(got), got[0])
	}
	hull := d3.Tetrahedron(tetraCorners)
	for i := 1; i < count; i++ {
		if !hull.Contains(got[i], 1e-12) {
			t.Fatalf("point %d %v outside generating tetrahedron", i, got[i])
		}
		jump := r3.Sub(r3.Scale(2, got[i]), got[i-1])
		found := false
		for _, c := range tetraCorners {
			if d3.EqualWithin(jump, c, 1e-12) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("point %d is not a midpoint towards any corner: %v", i, jump)
		}
	}
}

func TestBatchValidate(t *testing.T) {
	tri, _ := sierpinski.Triangles2(gasketCorners, 2)
	for _, test := range []struct {
		name  string
		batch sierpinski.Batch2
		ok    bool
	}{
		{"triangles", sierpinski.Batch2{Mode: sierpinski.DrawTriangles, V: tri}, true},
		{"points", sierpinski.Batch2{Mode: sierpinski.DrawPoints, V: tri[:4]}, true},
		{"ragged triangles", sierpinski.Batch2{Mode: sierpinski.DrawTriangles, V: tri[:4]}, false},
		{"empty", sierpinski.Batch2{Mode: sierpinski.DrawPoints}, false},
		{"no mode", sierpinski.Batch2{V: tri}, false},
	} {
		err := test.batch.Validate()
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		} else if !test.ok && !errors.Is(err, sierpinski.ErrInvalidParameter) {
			t.Errorf("%s: want ErrInvalidParameter, got %v", test.name, err)
		}
	}
	b3 := sierpinski.Batch3{Mode: sierpinski.DrawTriangles, V: make([]r3.Vec, 12)}
	if err := b3.Validate(); err != nil {
		t.Error(err)
	}
	if sierpinski.DrawTriangles.String() != "triangles" || sierpinski.DrawMode(0).String() != "unknown" {
		t.Error("bad DrawMode string")
	}
}

func BenchmarkChaosGame2(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		sierpinski.ChaosGame2(chaosCorners, r2.Vec{Y: 0.25}, 90000, rng)
	}
}
