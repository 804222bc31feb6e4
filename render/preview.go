package render

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of an STL preview.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos    r3.Vec
	Far, Near float64
	// Output image size in pixels.
	Width, Height int
	// Supersampling factor used to antialias the result.
	Scale int
	// Hex colors of the model and background.
	Color, Background string
}

// DefaultView is an isometric view of a model fit in a bi-unit cube.
var DefaultView = View{
	Up:         r3.Vec{Z: 1},
	Eyepos:     d3.Elem(2.4),
	Near:       1,
	Far:        10,
	Width:      768,
	Height:     432,
	Scale:      2,
	Color:      "#468966",
	Background: "#FFF8E3",
}

// STLToPNG renders the model in stlName with a phong shader and saves it as a PNG image.
func STLToPNG(stlName, outputName string, view View) error {
	if view.Width <= 0 || view.Height <= 0 {
		return errors.New("invalid preview image size")
	}
	if view.Scale < 1 {
		view.Scale = 1
	}
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const fovy = 30 // vertical field of view in degrees
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z) // camera position
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*view.Scale, view.Height*view.Scale)
	context.ClearColorBufferWith(fauxgl.HexColor(view.Background))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(view.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(view.Width), uint(view.Height), image, resize.Bilinear)
	return fauxgl.SavePNG(outputName, image)
}
