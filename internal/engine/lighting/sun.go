// Package lighting provides the directional light used to shade the terrain.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// Sun is a directional light described by compass angles.
type Sun struct {
	Azimuth   float32 // degrees around Y, 0 points toward -Z
	Elevation float32 // degrees above the horizon
	Ambient   float32 // light reaching faces turned away from the sun, 0-1
}

// DefaultSun is a late-morning sun from the south-east.
func DefaultSun() Sun {
	return Sun{Azimuth: 135, Elevation: 50, Ambient: 0.3}
}

// Direction returns the unit vector pointing from the ground toward the sun.
// Spherical to Cartesian, with azimuth measured the same way as camera yaw.
func (s Sun) Direction() math.Vec3 {
	az := float64(s.Azimuth) * gomath.Pi / 180.0
	el := float64(s.Elevation) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(-gomath.Cos(el) * gomath.Cos(az)),
	}.Normalize()
}
