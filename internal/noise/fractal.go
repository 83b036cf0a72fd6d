package noise

// Default octave parameters for terrain.
const (
	DefaultOctaves     = 5
	DefaultPersistence = 0.45
	DefaultLacunarity  = 2.0
)

// Fractal sums octaves of a base source.
// It holds no mutable state and is safe for concurrent use.
type Fractal struct {
	Base        Source
	Octaves     int
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
}

// Default returns the terrain fractal: value noise, 5 octaves, persistence 0.45.
func Default() *Fractal {
	return &Fractal{
		Base:        Value{},
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
	}
}

// Height returns the fractal sum at (x, z). Frequency and amplitude both start at 1.
func (f *Fractal) Height(x, z float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	for i := 0; i < f.Octaves; i++ {
		total += f.Base.Noise2D(x*frequency, z*frequency) * amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}
	return total
}

// MaxAmplitude returns the sum of octave amplitudes, an upper bound on |Height|
// when the base stays within [-1, 1].
func (f *Fractal) MaxAmplitude() float64 {
	total := 0.0
	amplitude := 1.0
	for i := 0; i < f.Octaves; i++ {
		total += amplitude
		amplitude *= f.Persistence
	}
	return total
}
