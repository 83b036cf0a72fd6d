// Package terrain builds heightfield meshes from a fractal noise field.
package terrain

import (
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Vertex is a terrain mesh vertex. The layout is tightly packed float32s
// (position then normal) for direct GPU upload.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Mesh holds the complete terrain mesh ready for GPU upload.
// It is read-only once built.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32 // triangle list
	Model    math.Mat4
	Color    [3]float32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the center point of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Params configures the grid and the mapping from noise to world heights.
type Params struct {
	Width  int        // grid vertices along X
	Depth  int        // grid vertices along Z
	Scale  float64    // noise units spanned by the whole grid
	Height float64    // world units per unit of noise
	Color  [3]float32 // RGB
}

// Default grid and height constants.
const (
	DefaultWidth  = 50
	DefaultDepth  = 50
	DefaultScale  = 5.0
	DefaultHeight = 12.0
)

// DefaultColor is the terrain green.
var DefaultColor = [3]float32{0.3, 0.6, 0.2}

// DefaultParams returns the 50x50 reference grid.
func DefaultParams() Params {
	return Params{
		Width:  DefaultWidth,
		Depth:  DefaultDepth,
		Scale:  DefaultScale,
		Height: DefaultHeight,
		Color:  DefaultColor,
	}
}
