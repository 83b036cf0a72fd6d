package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/lighting"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/midgard-terrain/internal/engine/shader"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// ErrEmptyMesh is returned when uploading a mesh with no triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// TerrainRenderer draws one uploaded terrain mesh.
type TerrainRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	model math.Mat4
	color [3]float32

	Sun      lighting.Sun
	FogColor [3]float32
	FogFar   float32
}

// NewTerrainRenderer compiles the terrain program.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.New(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program: program,
		Sun:     lighting.DefaultSun(),
		FogFar:  100,
	}, nil
}

// Upload copies the mesh into GPU buffers, replacing any previous mesh.
// The mesh is only read.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh) error {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return ErrEmptyMesh
	}
	tr.release()

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), unsafe.Offsetof(terrain.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	tr.indexCount = int32(len(mesh.Indices))
	tr.model = mesh.Model
	tr.color = mesh.Color

	logger.Debug("terrain uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int32("indices", tr.indexCount),
	)
	return nil
}

// Draw renders the terrain with the given camera matrices.
func (tr *TerrainRenderer) Draw(view, projection math.Mat4) {
	if tr.vao == 0 {
		return
	}

	tr.program.Use()
	gl.UniformMatrix4fv(tr.program.Uniform("uModel"), 1, false, tr.model.Ptr())
	gl.UniformMatrix4fv(tr.program.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(tr.program.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.Uniform3f(tr.program.Uniform("uColor"), tr.color[0], tr.color[1], tr.color[2])

	sun := tr.Sun.Direction()
	gl.Uniform3f(tr.program.Uniform("uLightDir"), sun.X, sun.Y, sun.Z)
	gl.Uniform1f(tr.program.Uniform("uAmbient"), tr.Sun.Ambient)
	gl.Uniform3f(tr.program.Uniform("uFogColor"), tr.FogColor[0], tr.FogColor[1], tr.FogColor[2])
	gl.Uniform1f(tr.program.Uniform("uFogFar"), tr.FogFar)

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) release() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

// Destroy releases all GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.release()
	if tr.program != nil {
		tr.program.Delete()
	}
}
