// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader transforms terrain vertices by model, view and projection.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader applies sun lighting and distance fog to the terrain color.
//
//go:embed terrain.frag
var TerrainFragmentShader string
