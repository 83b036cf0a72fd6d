package terrain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/noise"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// normalVerticalWeight is the fixed Y component of the unnormalized normal.
const normalVerticalWeight = 2.0

// ErrInvalidDimensions is returned for a non-positive grid width or depth.
var ErrInvalidDimensions = errors.New("terrain dimensions must be positive")

// Generator builds meshes and answers height queries from one set of params,
// so the two cannot disagree.
type Generator struct {
	params Params
	field  *noise.Fractal
}

// New creates a generator. A nil field uses noise.Default().
func New(params Params, field *noise.Fractal) (*Generator, error) {
	if params.Width <= 0 || params.Depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, params.Width, params.Depth)
	}
	if field == nil {
		field = noise.Default()
	}
	return &Generator{params: params, field: field}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// BuildTerrain builds a width x depth mesh with the default noise field and constants.
func BuildTerrain(width, depth int) (*Mesh, error) {
	params := DefaultParams()
	params.Width = width
	params.Depth = depth

	g, err := New(params, nil)
	if err != nil {
		return nil, err
	}
	return g.Build(), nil
}

// Build creates the terrain mesh.
// Vertices are row-major (index z*width+x), centred on the origin in XZ.
func (g *Generator) Build() *Mesh {
	width := g.params.Width
	depth := g.params.Depth
	halfW := float64(width) / 2
	halfD := float64(depth) / 2

	vertices := make([]Vertex, 0, width*depth)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			vertices = append(vertices, Vertex{
				Position: math.Vec3{
					X: float32(float64(x) - halfW),
					Y: g.gridHeight(x, z),
					Z: float32(float64(z) - halfD),
				},
				Normal: math.Vec3{Y: 1},
			})
		}
	}

	computeNormals(vertices, width, depth)

	mesh := &Mesh{
		Vertices: vertices,
		Indices:  buildIndices(width, depth),
		Model:    math.Translate(0, 0, 0),
		Color:    g.params.Color,
		Bounds:   computeBounds(vertices),
	}

	logger.Debug("terrain built",
		zap.Int("width", width),
		zap.Int("depth", depth),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("minY", mesh.Bounds.Min.Y),
		zap.Float32("maxY", mesh.Bounds.Max.Y),
	)

	return mesh
}

// computeNormals approximates each normal from the height difference of its
// grid neighbours. Missing neighbours at the edge use the vertex's own height.
func computeNormals(vertices []Vertex, width, depth int) {
	height := func(x, z int) float32 {
		return vertices[z*width+x].Position.Y
	}

	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			left, right, down, up := x, x, z, z
			if x > 0 {
				left = x - 1
			}
			if x < width-1 {
				right = x + 1
			}
			if z > 0 {
				down = z - 1
			}
			if z < depth-1 {
				up = z + 1
			}

			n := math.Vec3{
				X: height(left, z) - height(right, z),
				Y: normalVerticalWeight,
				Z: height(x, down) - height(x, up),
			}
			vertices[z*width+x].Normal = n.Normalize()
		}
	}
}

// buildIndices emits two triangles per grid quad with winding (i0, i2, i1), (i1, i2, i3).
// The renderer relies on this order for front faces.
func buildIndices(width, depth int) []uint32 {
	if width < 2 || depth < 2 {
		return []uint32{}
	}

	indices := make([]uint32, 0, (width-1)*(depth-1)*6)
	w := uint32(width)
	for z := uint32(0); z < uint32(depth-1); z++ {
		for x := uint32(0); x < w-1; x++ {
			i0 := z*w + x
			i1 := z*w + x + 1
			i2 := (z+1)*w + x
			i3 := (z+1)*w + x + 1

			indices = append(indices,
				i0, i2, i1,
				i1, i2, i3,
			)
		}
	}
	return indices
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
