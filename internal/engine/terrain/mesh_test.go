package terrain

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/noise"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

func TestBuildTerrainCounts(t *testing.T) {
	tests := []struct {
		width, depth int
	}{
		{50, 50},
		{2, 2},
		{7, 3},
		{1, 5},
		{64, 33},
	}

	for _, tt := range tests {
		mesh, err := BuildTerrain(tt.width, tt.depth)
		if err != nil {
			t.Fatalf("BuildTerrain(%d, %d): %v", tt.width, tt.depth, err)
		}

		if got, want := len(mesh.Vertices), tt.width*tt.depth; got != want {
			t.Errorf("%dx%d: vertex count = %d, want %d", tt.width, tt.depth, got, want)
		}
		if got, want := len(mesh.Indices), 2*(tt.width-1)*(tt.depth-1)*3; got != want {
			t.Errorf("%dx%d: index count = %d, want %d", tt.width, tt.depth, got, want)
		}
		if len(mesh.Indices)%3 != 0 {
			t.Errorf("%dx%d: index count %d not a multiple of 3", tt.width, tt.depth, len(mesh.Indices))
		}
		for i, idx := range mesh.Indices {
			if int(idx) >= len(mesh.Vertices) {
				t.Fatalf("%dx%d: index[%d] = %d out of range", tt.width, tt.depth, i, idx)
			}
		}
	}
}

func TestBuildTerrainVertices(t *testing.T) {
	mesh, err := BuildTerrain(50, 50)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}

	for i, v := range mesh.Vertices {
		if v.Position.Y < -25 || v.Position.Y > 25 {
			t.Errorf("vertex %d height %f outside [-25, 25]", i, v.Position.Y)
		}
		if l := v.Normal.Length(); gomath.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("vertex %d normal length = %f, want 1", i, l)
		}
		if v.Normal.Y <= 0 {
			t.Errorf("vertex %d normal points down: %v", i, v.Normal)
		}
	}

	// Row-major layout centred on the origin.
	first := mesh.Vertices[0].Position
	if first.X != -25 || first.Z != -25 {
		t.Errorf("vertex 0 at (%f, %f), want (-25, -25)", first.X, first.Z)
	}
	v := mesh.Vertices[3*50+7].Position
	if v.X != 7-25 || v.Z != 3-25 {
		t.Errorf("vertex z=3,x=7 at (%f, %f), want (-18, -22)", v.X, v.Z)
	}
}

func TestBuildTerrainWinding(t *testing.T) {
	mesh, err := BuildTerrain(3, 3)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}

	want := []uint32{
		0, 3, 1, 1, 3, 4,
		1, 4, 2, 2, 4, 5,
		3, 6, 4, 4, 6, 7,
		4, 7, 5, 5, 7, 8,
	}
	if len(mesh.Indices) != len(want) {
		t.Fatalf("index count = %d, want %d", len(mesh.Indices), len(want))
	}
	for i := range want {
		if mesh.Indices[i] != want[i] {
			t.Errorf("index[%d] = %d, want %d", i, mesh.Indices[i], want[i])
		}
	}
}

func TestBuildTerrainTrianglesFaceUp(t *testing.T) {
	mesh, err := BuildTerrain(10, 10)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}

	// Counter-clockwise seen from above: the geometric normal has positive Y.
	for tri := 0; tri < mesh.TriangleCount(); tri++ {
		a := mesh.Vertices[mesh.Indices[tri*3]].Position
		b := mesh.Vertices[mesh.Indices[tri*3+1]].Position
		c := mesh.Vertices[mesh.Indices[tri*3+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Y <= 0 {
			t.Fatalf("triangle %d faces down: normal %v", tri, n)
		}
	}
}

func TestBuildTerrainNormals(t *testing.T) {
	p := DefaultParams()
	p.Width, p.Depth = 6, 4
	g, err := New(p, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mesh := g.Build()
	h := func(x, z int) float32 { return mesh.Vertices[z*p.Width+x].Position.Y }

	tests := []struct {
		name                      string
		x, z                      int
		left, right, down, upward [2]int
	}{
		{"interior", 2, 2, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 1}, [2]int{2, 3}},
		{"corner", 0, 0, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}},
		{"far corner", 5, 3, [2]int{4, 3}, [2]int{5, 3}, [2]int{5, 2}, [2]int{5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.Vec3{
				X: h(tt.left[0], tt.left[1]) - h(tt.right[0], tt.right[1]),
				Y: 2,
				Z: h(tt.down[0], tt.down[1]) - h(tt.upward[0], tt.upward[1]),
			}.Normalize()
			got := mesh.Vertices[tt.z*p.Width+tt.x].Normal
			if got.Sub(want).Length() > 1e-6 {
				t.Errorf("normal at (%d, %d) = %v, want %v", tt.x, tt.z, got, want)
			}
		})
	}
}

func TestBuildTerrainModelAndColor(t *testing.T) {
	mesh, err := BuildTerrain(4, 4)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}
	if mesh.Model != math.Identity() {
		t.Errorf("model = %v, want identity", mesh.Model)
	}
	if mesh.Color != DefaultColor {
		t.Errorf("color = %v, want %v", mesh.Color, DefaultColor)
	}
}

func TestBuildTerrainBounds(t *testing.T) {
	mesh, err := BuildTerrain(20, 10)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}
	b := mesh.Bounds
	if b.Min.X != -10 || b.Max.X != 9 || b.Min.Z != -5 || b.Max.Z != 4 {
		t.Errorf("XZ bounds = %v..%v, want (-10,-5)..(9,4)", b.Min, b.Max)
	}
	for _, v := range mesh.Vertices {
		if v.Position.Y < b.Min.Y || v.Position.Y > b.Max.Y {
			t.Fatalf("vertex %v outside bounds %v", v.Position, b)
		}
	}
}

func TestBuildTerrainDeterministic(t *testing.T) {
	a, err := BuildTerrain(16, 16)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}
	b, err := BuildTerrain(16, 16)
	if err != nil {
		t.Fatalf("BuildTerrain: %v", err)
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		width, depth int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{5, -3},
	}
	for _, tt := range tests {
		_, err := BuildTerrain(tt.width, tt.depth)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("BuildTerrain(%d, %d): expected ErrInvalidDimensions, got %v", tt.width, tt.depth, err)
		}
	}
}

func TestNewWithCustomField(t *testing.T) {
	src, err := noise.NewSource(noise.KindSimplex, 7)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	field := &noise.Fractal{Base: src, Octaves: 3, Persistence: 0.5, Lacunarity: 2}

	p := DefaultParams()
	p.Width, p.Depth = 12, 12
	g, err := New(p, field)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mesh := g.Build()
	if len(mesh.Vertices) != 144 {
		t.Errorf("vertex count = %d, want 144", len(mesh.Vertices))
	}
	limit := float32(field.MaxAmplitude() * p.Height * 1.5)
	for _, v := range mesh.Vertices {
		if v.Position.Y < -limit || v.Position.Y > limit {
			t.Fatalf("height %f outside +-%f", v.Position.Y, limit)
		}
	}
}
