// Package glview draws generated vertex batches in an OpenGL window.
//
// GL and GLFW calls must be made from the main thread. Importing glview locks
// the main goroutine to its OS thread, and Show2/Show3 must be called from it.
package glview

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/sierpinski"
)

func init() {
	runtime.LockOSThread() // For GL.
}

var (
	//go:embed plain2d.glsl
	plain2DSource string
	//go:embed position3d.glsl
	position3DSource string
)

// Config configures the window batches are drawn in.
type Config struct {
	Title         string
	Width, Height int
	// OpenGL context version, at least 3.3.
	Version [2]int
	// Clear color as RGBA.
	Background [4]float32
	// Size in pixels of points drawn with sierpinski.DrawPoints.
	PointSize float32
}

// DefaultConfig returns an 800x800 window with a white background.
func DefaultConfig(title string) Config {
	return Config{
		Title:      title,
		Width:      800,
		Height:     800,
		Version:    [2]int{3, 3},
		Background: [4]float32{1, 1, 1, 1},
		PointSize:  1,
	}
}

func (cfg Config) validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return errors.New("invalid window size")
	case cfg.Version[0] < 3 || (cfg.Version[0] == 3 && cfg.Version[1] < 3):
		return errors.New("OpenGL version must be at least 3.3")
	case cfg.PointSize <= 0:
		return errors.New("point size must be positive")
	}
	return nil
}

// Show2 opens a window and draws b every frame until the window is closed.
// Vertices are drawn in clip space: the visible region spans [-1,1] on both axes.
func Show2(cfg Config, b sierpinski.Batch2) error {
	if err := b.Validate(); err != nil {
		return err
	}
	gpu := ToGPU2(b.V)
	if err := checkFinite2(gpu); err != nil {
		return err
	}
	return show(cfg, b.Mode, len(gpu), 2, gpu, plain2DSource)
}

// Show3 opens a window and draws b every frame until the window is closed.
// Vertices are drawn in clip space and colored by their position.
func Show3(cfg Config, b sierpinski.Batch3) error {
	if err := b.Validate(); err != nil {
		return err
	}
	gpu := ToGPU3(b.V)
	if err := checkFinite3(gpu); err != nil {
		return err
	}
	return show(cfg, b.Mode, len(gpu), 3, gpu, position3DSource)
}

// show runs the render loop. data is a slice of ms2.Vec or ms3.Vec of length n.
func show(cfg Config, mode sierpinski.DrawMode, n, components int, data any, source string) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	window, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:   cfg.Title,
		Version: cfg.Version,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	if err != nil {
		return fmt.Errorf("starting GLFW: %w", err)
	}
	defer terminate()

	combinedSource, err := glgl.ParseCombined(bytes.NewBufferString(source))
	if err != nil {
		return err
	}
	prog, err := glgl.CompileProgram(combinedSource)
	if err != nil {
		return fmt.Errorf("compiling pass-through program: %w", err)
	}
	prog.Bind()

	buf := upload(data, n, components)
	defer buf.release()

	if components == 3 {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	gl.PointSize(cfg.PointSize)
	primitive := glMode(mode)
	bg := cfg.Background
	for !window.ShouldClose() {
		gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		buf.bind()
		gl.DrawArrays(primitive, 0, int32(n))
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func glMode(mode sierpinski.DrawMode) uint32 {
	switch mode {
	case sierpinski.DrawPoints:
		return gl.POINTS
	case sierpinski.DrawTriangles:
		return gl.TRIANGLES
	}
	panic("bug: unvalidated draw mode " + mode.String())
}
