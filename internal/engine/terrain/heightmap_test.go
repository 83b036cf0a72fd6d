package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/noise"
)

func TestTerrainHeightRange(t *testing.T) {
	for x := -40.0; x <= 40; x += 1.7 {
		for z := -40.0; z <= 40; z += 2.3 {
			h := TerrainHeight(x, z)
			if h < -25 || h > 25 {
				t.Fatalf("TerrainHeight(%v, %v) = %v outside [-25, 25]", x, z, h)
			}
		}
	}
}

func TestTerrainHeightSamples(t *testing.T) {
	points := [][2]float64{{0, 0}, {10, 10}, {-20, 5}}
	for _, p := range points {
		h := TerrainHeight(p[0], p[1])
		if h < -25 || h > 25 {
			t.Errorf("TerrainHeight(%v, %v) = %v outside [-25, 25]", p[0], p[1], h)
		}
	}
}

func TestTerrainHeightMatchesFractal(t *testing.T) {
	// World origin maps to the grid centre: normalized (25/50)*5 = 2.5.
	want := noise.Default().Height(2.5, 2.5) * DefaultHeight
	if got := TerrainHeight(0, 0); got != want {
		t.Errorf("TerrainHeight(0, 0) = %v, want %v", got, want)
	}
}

func TestHeightAtMatchesMesh(t *testing.T) {
	sizes := [][2]int{{50, 50}, {31, 17}, {8, 8}}
	for _, size := range sizes {
		p := DefaultParams()
		p.Width, p.Depth = size[0], size[1]
		g, err := New(p, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		mesh := g.Build()

		for _, v := range mesh.Vertices {
			h := g.HeightAt(float64(v.Position.X), float64(v.Position.Z))
			if gomath.Abs(h-float64(v.Position.Y)) > 1e-4 {
				t.Fatalf("%dx%d: HeightAt(%v, %v) = %v, mesh has %v",
					size[0], size[1], v.Position.X, v.Position.Z, h, v.Position.Y)
			}
		}
	}
}

func TestTerrainHeightMatchesDefaultMesh(t *testing.T) {
	mesh, err := BuildTerrain(DefaultWidth, DefaultDepth)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}
	for i := 0; i < len(mesh.Vertices); i += 37 {
		v := mesh.Vertices[i]
		h := TerrainHeight(float64(v.Position.X), float64(v.Position.Z))
		if gomath.Abs(h-float64(v.Position.Y)) > 1e-4 {
			t.Errorf("TerrainHeight(%v, %v) = %v, mesh has %v", v.Position.X, v.Position.Z, h, v.Position.Y)
		}
	}
}

func TestHeightAtOutsideGrid(t *testing.T) {
	g, err := New(DefaultParams(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Well outside the grid the field is still defined and continuous.
	a := g.HeightAt(-500, 300)
	b := g.HeightAt(-500+1e-7, 300)
	if gomath.IsNaN(a) || gomath.Abs(a-b) > 1e-4 {
		t.Errorf("HeightAt outside grid: %v vs %v", a, b)
	}
}

func TestGeneratorParams(t *testing.T) {
	p := DefaultParams()
	p.Height = 3
	g, err := New(p, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Params() != p {
		t.Errorf("Params() = %+v, want %+v", g.Params(), p)
	}
}
