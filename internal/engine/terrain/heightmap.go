package terrain

import (
	"github.com/Faultbox/midgard-terrain/internal/noise"
)

// HeightAt returns the terrain height at world (x, z), the same value a
// vertex of the generator's mesh has at that position. The query is defined
// everywhere, including outside the grid.
func (g *Generator) HeightAt(x, z float64) float64 {
	w := float64(g.params.Width)
	d := float64(g.params.Depth)
	nx := (x + w/2) / w * g.params.Scale
	nz := (z + d/2) / d * g.params.Scale
	return g.field.Height(nx, nz) * g.params.Height
}

// gridHeight returns the height for grid cell (x, z).
func (g *Generator) gridHeight(x, z int) float32 {
	nx := float64(x) / float64(g.params.Width) * g.params.Scale
	nz := float64(z) / float64(g.params.Depth) * g.params.Scale
	return float32(g.field.Height(nx, nz) * g.params.Height)
}

var reference = &Generator{params: DefaultParams(), field: noise.Default()}

// TerrainHeight returns the height at world (x, z) for the default 50x50 terrain.
func TerrainHeight(x, z float64) float64 {
	return reference.HeightAt(x, z)
}
