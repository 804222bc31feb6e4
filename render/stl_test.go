package render_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/render"
	"gonum.org/v1/gonum/spatial/r3"
)

var tetraCorners = [4]r3.Vec{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: 0, Y: 0, Z: 1},
}

func TestSTLCreateWriteRead(t *testing.T) {
	const depth = 3
	path := filepath.Join(t.TempDir(), "tetra.stl")
	v, err := sierpinski.Tetrahedron(tetraCorners, depth)
	if err != nil {
		t.Fatal(err)
	}
	r, err := render.NewMeshRenderer(v)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(path, r)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.Triangles(v)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestRenderAll(t *testing.T) {
	v, err := sierpinski.Tetrahedron(tetraCorners, 4) // 1024 leaves, 4096 triangles.
	if err != nil {
		t.Fatal(err)
	}
	r, err := render.NewMeshRenderer(v)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) != len(v)/3 {
		t.Fatalf("got %d triangles, want %d", len(model), len(v)/3)
	}
	for i, tri := range model {
		for j := range tri {
			if tri[j] != v[3*i+j] {
				t.Fatalf("triangle %d vertex %d: got %v want %v", i, j, tri[j], v[3*i+j])
			}
		}
	}
}

func TestMeshRendererInvalid(t *testing.T) {
	if _, err := render.NewMeshRenderer(nil); err == nil {
		t.Error("expected error for empty mesh")
	}
	if _, err := render.NewMeshRenderer(make([]r3.Vec, 4)); err == nil {
		t.Error("expected error for ragged mesh")
	}
	if _, err := render.Triangles(make([]r3.Vec, 5)); err == nil {
		t.Error("expected error for ragged triangle list")
	}
}
