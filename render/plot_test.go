package render_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/cmpimg"
)

var gasketCorners = [3]r2.Vec{{X: -0.9, Y: -0.7}, {X: 0.9, Y: 0.0}, {X: 0.0, Y: 0.75}}

func TestPlotDeterministic(t *testing.T) {
	tri, err := sierpinski.Triangles2(gasketCorners, 4)
	if err != nil {
		t.Fatal(err)
	}
	cloud, err := sierpinski.ChaosGame2(gasketCorners, r2.Vec{Y: 0.25}, 2000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	encode := func(v []r2.Vec, triangles bool) []byte {
		var b bytes.Buffer
		fig := render.DefaultFigure
		fig.Width = 200
		newPlot := render.NewPointsPlot2
		if triangles {
			newPlot = render.NewTrianglesPlot2
		}
		p, err := newPlot(v, fig)
		if err != nil {
			t.Fatal(err)
		}
		err = render.WritePlot(&b, p, "png", v, fig)
		if err != nil {
			t.Fatal(err)
		}
		return b.Bytes()
	}
	for _, test := range []struct {
		name      string
		v         []r2.Vec
		triangles bool
	}{
		{"triangles", tri, true},
		{"points", cloud, false},
	} {
		a := encode(test.v, test.triangles)
		b := encode(test.v, test.triangles)
		equal, err := cmpimg.Equal("png", a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Errorf("%s: same data plotted differently", test.name)
		}
	}
	a := encode(tri, true)
	b := encode(cloud, false)
	equal, err := cmpimg.Equal("png", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Error("gasket and point cloud figures should differ")
	}
}

func TestPlotFiles(t *testing.T) {
	dir := t.TempDir()
	tri, err := sierpinski.Triangles2(gasketCorners, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"gasket.png", "gasket.svg"} {
		path := filepath.Join(dir, name)
		err = render.PlotTriangles2(path, tri, render.DefaultFigure)
		if err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if err := render.PlotPoints2(filepath.Join(dir, "noext"), tri, render.DefaultFigure); err == nil {
		t.Error("expected error for path without extension")
	}
	if _, err := render.NewTrianglesPlot2(tri[:4], render.DefaultFigure); err == nil {
		t.Error("expected error for ragged triangle list")
	}
}
