package debug

import (
	"image"
	"image/color"
	gomath "math"
)

// HeightFunc returns the terrain height at world (x, z).
type HeightFunc func(x, z float64) float64

// HeightmapImage samples heights over [minX,maxX] x [minZ,maxZ] into a
// width x height grayscale image. Low ground is black and the highest
// sample is white. Row 0 is minZ.
func HeightmapImage(height HeightFunc, minX, minZ, maxX, maxZ float64, width, rows int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, rows))
	if width <= 0 || rows <= 0 {
		return img
	}

	samples := make([]float64, width*rows)
	lo, hi := gomath.Inf(1), gomath.Inf(-1)
	for z := 0; z < rows; z++ {
		wz := lerp(minZ, maxZ, z, rows)
		for x := 0; x < width; x++ {
			h := height(lerp(minX, maxX, x, width), wz)
			samples[z*width+x] = h
			lo = gomath.Min(lo, h)
			hi = gomath.Max(hi, h)
		}
	}

	span := hi - lo
	for i, h := range samples {
		var v uint8
		if span > 0 {
			v = uint8(gomath.Round((h - lo) / span * 255))
		}
		img.SetGray(i%width, i/width, color.Gray{Y: v})
	}
	return img
}

// lerp maps sample i of n onto [a, b], hitting both ends.
func lerp(a, b float64, i, n int) float64 {
	if n == 1 {
		return a
	}
	return a + (b-a)*float64(i)/float64(n-1)
}
