// Package noise implements the deterministic height field used for terrain generation.
//
// The base is lattice value noise: an integer hash per lattice point, blended
// with cosine interpolation inside each cell. Fractal sums several octaves of a
// base at doubling frequency and decaying amplitude.
package noise

import "math"

// Lattice returns a pseudo-random value in [-1, 1] for the lattice point (ix, iz).
// Arithmetic wraps in 32 bits, so negative coordinates hash the same way as positive ones.
func Lattice(ix, iz int32) float64 {
	n := ix + iz*57
	n = (n << 13) ^ n
	m := (n*(n*n*15731+789221) + 1376312589) & 0x7fffffff
	return 1.0 - float64(m)/1073741824.0
}

// CosineInterpolate blends a and b with a cosine ease: t=0 gives a, t=1 gives b.
func CosineInterpolate(a, b, t float64) float64 {
	f := (1 - math.Cos(t*math.Pi)) * 0.5
	return a*(1-f) + b*f
}

// Smoothed blends the four lattice values of the cell containing (x, z).
func Smoothed(x, z float64) float64 {
	fx := math.Floor(x)
	fz := math.Floor(z)
	ix, iz := int32(fx), int32(fz)
	tx, tz := x-fx, z-fz

	v1 := Lattice(ix, iz)
	v2 := Lattice(ix+1, iz)
	v3 := Lattice(ix, iz+1)
	v4 := Lattice(ix+1, iz+1)

	i1 := CosineInterpolate(v1, v2, tx)
	i2 := CosineInterpolate(v3, v4, tx)
	return CosineInterpolate(i1, i2, tz)
}

// Value is the lattice value-noise base. It has no seed.
type Value struct{}

// Noise2D implements Source.
func (Value) Noise2D(x, z float64) float64 {
	return Smoothed(x, z)
}
