package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a continuous 2D noise base.
type Source interface {
	Noise2D(x, z float64) float64
}

// Kinds of noise base.
const (
	KindValue   = "value"
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// ErrUnknownKind is returned by NewSource for an unrecognized base.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kinds lists the accepted base names.
func Kinds() []string {
	return []string{KindValue, KindPerlin, KindSimplex}
}

// NewSource returns the base named kind. The value base ignores seed.
func NewSource(kind string, seed int64) (Source, error) {
	switch strings.ToLower(kind) {
	case "", KindValue:
		return Value{}, nil
	case KindPerlin:
		return newPerlin(seed), nil
	case KindSimplex:
		return simplexSource{opensimplex.New(seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// perlinSource runs go-perlin with a single octave so Fractal controls layering.
type perlinSource struct {
	p *perlin.Perlin
}

func newPerlin(seed int64) perlinSource {
	return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise2D scales the roughly [-0.5, 0.5] perlin output to about [-1, 1].
func (s perlinSource) Noise2D(x, z float64) float64 {
	return s.p.Noise2D(x, z) * 2
}

type simplexSource struct {
	n opensimplex.Noise
}

func (s simplexSource) Noise2D(x, z float64) float64 {
	return s.n.Eval2(x, z)
}
