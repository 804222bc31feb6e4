package render

import (
	"errors"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/soypat/sierpinski/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure configures 2D figures of point clouds and triangle lists.
type Figure struct {
	Title string
	// Width of the figure. The height follows the aspect ratio of the data.
	Width       vg.Length
	Color       color.Color
	PointRadius vg.Length
}

// DefaultFigure draws red on white like the windowed demos.
var DefaultFigure = Figure{
	Width:       6 * vg.Inch,
	Color:       color.RGBA{R: 255, A: 255},
	PointRadius: 0.5,
}

// NewPointsPlot2 returns a plot of v drawn as unconnected points.
func NewPointsPlot2(v []r2.Vec, fig Figure) (*plot.Plot, error) {
	if len(v) == 0 {
		return nil, errors.New("no points to plot")
	}
	scatter, err := plotter.NewScatter(xys(v))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  fig.Color,
		Radius: fig.PointRadius,
		Shape:  draw.CircleGlyph{},
	}
	p := newPlot(v, fig)
	p.Add(scatter)
	return p, nil
}

// NewTrianglesPlot2 returns a plot of the triangle list v with filled triangles.
func NewTrianglesPlot2(v []r2.Vec, fig Figure) (*plot.Plot, error) {
	if len(v) == 0 {
		return nil, errors.New("no triangles to plot")
	} else if len(v)%3 != 0 {
		return nil, errors.New("triangle list length not a multiple of 3")
	}
	rings := make([]plotter.XYer, 0, len(v)/3)
	for i := 0; i < len(v); i += 3 {
		rings = append(rings, xys(v[i:i+3]))
	}
	poly, err := plotter.NewPolygon(rings...)
	if err != nil {
		return nil, err
	}
	poly.Color = fig.Color
	poly.LineStyle.Width = 0
	p := newPlot(v, fig)
	p.Add(poly)
	return p, nil
}

// PlotPoints2 saves a figure of the point cloud v. The image format is
// chosen from the file extension (png, svg, pdf, eps, jpg, tiff).
func PlotPoints2(path string, v []r2.Vec, fig Figure) error {
	p, err := NewPointsPlot2(v, fig)
	if err != nil {
		return err
	}
	return savePlot(p, path, v, fig)
}

// PlotTriangles2 saves a figure of the triangle list v. See PlotPoints2.
func PlotTriangles2(path string, v []r2.Vec, fig Figure) error {
	p, err := NewTrianglesPlot2(v, fig)
	if err != nil {
		return err
	}
	return savePlot(p, path, v, fig)
}

// WritePlot writes p encoded as format ("png", "svg", ...) to w using
// the figure size that fits the data v.
func WritePlot(w io.Writer, p *plot.Plot, format string, v []r2.Vec, fig Figure) error {
	width, height := figureSize(v, fig)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ProjectXY drops the Z component of every vector of v.
func ProjectXY(v []r3.Vec) []r2.Vec {
	proj := make([]r2.Vec, len(v))
	for i := range v {
		proj[i] = r2.Vec{X: v[i].X, Y: v[i].Y}
	}
	return proj
}

func savePlot(p *plot.Plot, path string, v []r2.Vec, fig Figure) error {
	if strings.TrimPrefix(filepath.Ext(path), ".") == "" {
		return errors.New("figure path has no extension to choose format from: " + path)
	}
	width, height := figureSize(v, fig)
	return p.Save(width, height, path)
}

func newPlot(v []r2.Vec, fig Figure) *plot.Plot {
	bb := d2.Set(v).Bounds().ScaleAboutCenter(1.05)
	p := plot.New()
	p.Title.Text = fig.Title
	p.HideAxes()
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p
}

func figureSize(v []r2.Vec, fig Figure) (width, height vg.Length) {
	width = fig.Width
	if width <= 0 {
		width = DefaultFigure.Width
	}
	size := d2.Set(v).Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return width, width
	}
	return width, width * vg.Length(size.Y/size.X)
}

func xys(v []r2.Vec) plotter.XYs {
	pts := make(plotter.XYs, len(v))
	for i := range v {
		pts[i].X = v[i].X
		pts[i].Y = v[i].Y
	}
	return pts
}
