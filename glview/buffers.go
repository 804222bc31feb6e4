package glview

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/all-core/gl"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const sizeofFloat32 = 4

// ToGPU2 converts v to the single precision vectors uploaded to the GPU.
func ToGPU2(v []r2.Vec) []ms2.Vec {
	gpu := make([]ms2.Vec, len(v))
	for i, p := range v {
		gpu[i] = ms2.Vec{X: float32(p.X), Y: float32(p.Y)}
	}
	return gpu
}

// ToGPU3 converts v to the single precision vectors uploaded to the GPU.
func ToGPU3(v []r3.Vec) []ms3.Vec {
	gpu := make([]ms3.Vec, len(v))
	for i, p := range v {
		gpu[i] = ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
	}
	return gpu
}

var errNonFinite = errors.New("vertex not representable as finite float32")

func checkFinite2(v []ms2.Vec) error {
	for _, p := range v {
		if badF32(p.X) || badF32(p.Y) {
			return errNonFinite
		}
	}
	return nil
}

func checkFinite3(v []ms3.Vec) error {
	for _, p := range v {
		if badF32(p.X) || badF32(p.Y) || badF32(p.Z) {
			return errNonFinite
		}
	}
	return nil
}

func badF32(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}

// vertexBuffer is a vertex array object with a single tightly packed
// float attribute at location 0.
type vertexBuffer struct {
	vao uint32
	vbo uint32
}

// upload copies n vectors of the given amount of float32 components
// from data to a new static GPU buffer.
func upload(data any, n, components int) vertexBuffer {
	var buf vertexBuffer
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)
	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, n*components*sizeofFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, int32(components), gl.FLOAT, false, int32(components*sizeofFloat32), nil)
	gl.EnableVertexAttribArray(0)
	return buf
}

func (buf vertexBuffer) bind() {
	gl.BindVertexArray(buf.vao)
}

func (buf vertexBuffer) release() {
	gl.DeleteBuffers(1, &buf.vbo)
	gl.DeleteVertexArrays(1, &buf.vao)
}
