// Command sierpinski generates Sierpinski gaskets and tetrahedra and writes
// them as figures or STL meshes without opening a window.
//
//	sierpinski -kind chaos2 -count 20000 -o gasket.png
//	sierpinski -kind tetrahedron -depth 5 -o tetra.stl -preview
//	sierpinski -config scene.toml -coverage 6
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/analysis"
	"github.com/soypat/sierpinski/internal/config"
	"github.com/soypat/sierpinski/internal/d2"
	"github.com/soypat/sierpinski/internal/d3"
	"github.com/soypat/sierpinski/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

// Plot images are rasterized at this resolution.
const dpi = 96

func main() {
	var (
		configPath = flag.String("config", "", "TOML scene file. Flags set explicitly override its values.")
		kind       = flag.String("kind", string(config.Chaos2), "scene kind: chaos2, chaos3, triangles, tetrahedron or triangle")
		count      = flag.Int("count", 0, "amount of chaos game points")
		depth      = flag.Int("depth", 0, "subdivision depth")
		randSeed   = flag.Int64("rand", 0, "random seed of the chaos game corner choices, 0 seeds from the clock")
		output     = flag.String("o", "", "output file. Defaults to <kind>.png or <kind>.stl")
		preview    = flag.Bool("preview", false, "render a PNG preview next to STL output")
		coverage   = flag.Int("coverage", -1, "log the coverage of the output against the gasket of this depth")
	)
	flag.Parse()
	scene, err := loadScene(*configPath, config.Kind(*kind))
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			scene.Count = *count
		case "depth":
			scene.Depth = *depth
		case "rand":
			scene.RandSeed = *randSeed
		}
	})
	if err = scene.Validate(); err != nil {
		log.Fatal(err)
	}
	out := *output
	if out == "" {
		out = defaultOutput(scene.Kind)
	}
	start := time.Now()
	switch scene.Kind.Dims() {
	case 2:
		err = run2(scene, out, *coverage)
	case 3:
		err = run3(scene, out, *preview, *coverage)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s in %s", out, time.Since(start).Round(time.Millisecond))
}

// loadScene reads the scene file at path, or the default scene of kind
// when path is empty.
func loadScene(path string, kind config.Kind) (config.Scene, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	s := config.Default(kind)
	return s, s.Validate()
}

func defaultOutput(kind config.Kind) string {
	if kind == config.Tetrahedron {
		return string(kind) + ".stl"
	}
	return string(kind) + ".png"
}

func figure(s config.Scene) render.Figure {
	fig := render.DefaultFigure
	if s.Width > 0 {
		fig.Width = vg.Length(s.Width) * vg.Inch / dpi
	}
	return fig
}

func run2(s config.Scene, out string, coverageDepth int) error {
	b, err := s.Generate2()
	if err != nil {
		return err
	}
	log.Printf("generated %d vertices of %s scene", len(b.V), s.Kind)
	if coverageDepth >= 0 {
		corners, err := s.Corners2()
		if err != nil {
			return err
		}
		ref, err := sierpinski.Triangles2(corners, coverageDepth)
		if err != nil {
			return err
		}
		cov, err := analysis.Coverage2(b.V, ref)
		if err != nil {
			return err
		}
		log.Printf("coverage against depth %d gasket: %.4g (%.2f%% of extent)", coverageDepth, cov, 100*cov/extent2(corners))
	}
	if b.Mode == sierpinski.DrawPoints {
		return render.PlotPoints2(out, b.V, figure(s))
	}
	return render.PlotTriangles2(out, b.V, figure(s))
}

func run3(s config.Scene, out string, preview bool, coverageDepth int) error {
	b, err := s.Generate3()
	if err != nil {
		return err
	}
	log.Printf("generated %d vertices of %s scene", len(b.V), s.Kind)
	if coverageDepth >= 0 {
		corners, err := s.Corners3()
		if err != nil {
			return err
		}
		ref, err := sierpinski.Tetrahedron(corners, coverageDepth)
		if err != nil {
			return err
		}
		cov, err := analysis.Coverage3(b.V, ref)
		if err != nil {
			return err
		}
		log.Printf("coverage against depth %d tetrahedron: %.4g (%.2f%% of extent)", coverageDepth, cov, 100*cov/extent3(corners))
	}
	if b.Mode == sierpinski.DrawPoints {
		// Point clouds have no surface to mesh.
		return render.PlotPoints2(out, render.ProjectXY(b.V), figure(s))
	}
	if !strings.EqualFold(filepath.Ext(out), ".stl") {
		log.Printf("writing STL mesh to %s despite extension", out)
	}
	mesh, err := render.NewMeshRenderer(b.V)
	if err != nil {
		return err
	}
	if err = render.CreateSTL(out, mesh); err != nil {
		return err
	}
	if !preview {
		return nil
	}
	pngName := strings.TrimSuffix(out, filepath.Ext(out)) + ".png"
	view := render.DefaultView
	if s.Width > 0 && s.Height > 0 {
		view.Width, view.Height = s.Width, s.Height
	}
	if err = render.STLToPNG(out, pngName, view); err != nil {
		return err
	}
	log.Printf("wrote preview %s", pngName)
	return nil
}

// extent2 is the diagonal length of the bounding box of c.
func extent2(c [3]r2.Vec) float64 {
	return r2.Norm(d2.Set(c[:]).Bounds().Size())
}

func extent3(c [4]r3.Vec) float64 {
	return r3.Norm(d3.Set(c[:]).Bounds().Size())
}
