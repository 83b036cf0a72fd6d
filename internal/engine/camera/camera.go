// Package camera provides the free-flying camera used to view the terrain.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// moveEpsilon is the minimum length of the summed move direction that moves the camera.
const moveEpsilon = 0.01

// DefaultMaxPitch keeps the camera just short of looking straight up or down.
const DefaultMaxPitch = 1.5708

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Config holds the camera's construction parameters.
type Config struct {
	Position  math.Vec3
	FOVY      float32 // radians
	Near, Far float32
	MoveSpeed float32 // world units per second
	LookSpeed float32 // radians per pointer unit
	MaxPitch  float32
	MinBounds math.Vec3
	MaxBounds math.Vec3
}

// DefaultConfig returns the standard fly camera: starts at (0, 0, 3) looking
// down -Z, and is confined to [-20,20] x [0,20] x [-20,20].
func DefaultConfig() Config {
	return Config{
		Position:  math.Vec3{X: 0, Y: 0, Z: 3},
		FOVY:      gomath.Pi / 3,
		Near:      0.1,
		Far:       100,
		MoveSpeed: 8,
		LookSpeed: 0.005,
		MaxPitch:  DefaultMaxPitch,
		MinBounds: math.Vec3{X: -20, Y: 0, Z: -20},
		MaxBounds: math.Vec3{X: 20, Y: 20, Z: 20},
	}
}

// FlyCamera is a first-person camera driven by held actions and pointer motion.
//
// It is owned by a single frame loop and is not safe for concurrent use.
type FlyCamera struct {
	Position math.Vec3
	Yaw      float32 // radians, 0 looks down -Z
	Pitch    float32 // radians, clamped to [-MaxPitch, MaxPitch]

	MoveSpeed float32
	LookSpeed float32
	MaxPitch  float32

	MinBounds math.Vec3
	MaxBounds math.Vec3

	View       math.Mat4
	Projection math.Mat4 // fixed at construction

	// Pointer tracking. The first Update after construction or Reset only
	// records the pointer, so it never produces a jump.
	tracking     bool
	lastX, lastY float64
}

// NewFlyCamera creates a camera for a viewport of the given pixel size.
func NewFlyCamera(cfg Config, width, height int) *FlyCamera {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	c := &FlyCamera{
		Position:   cfg.Position,
		MoveSpeed:  cfg.MoveSpeed,
		LookSpeed:  cfg.LookSpeed,
		MaxPitch:   cfg.MaxPitch,
		MinBounds:  cfg.MinBounds,
		MaxBounds:  cfg.MaxBounds,
		Projection: math.Perspective(cfg.FOVY, aspect, cfg.Near, cfg.Far),
	}
	c.View = math.LookAt(c.Position, c.Position.Add(c.Forward()), worldUp)
	return c
}

// Reset forgets the last pointer position. Call it when pointer input resumes
// after a gap, e.g. when the window regains focus.
func (c *FlyCamera) Reset() {
	c.tracking = false
}

// Forward returns the unit view direction for the current yaw and pitch.
func (c *FlyCamera) Forward() math.Vec3 {
	yaw := float64(c.Yaw)
	pitch := float64(c.Pitch)
	cosPitch := gomath.Cos(pitch)
	return math.Vec3{
		X: float32(gomath.Sin(yaw) * cosPitch),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(-gomath.Cos(yaw) * cosPitch),
	}.Normalize()
}

// Right returns the unit strafe direction, perpendicular to Forward and world up.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Update advances the camera by dt seconds using the current input.
func (c *FlyCamera) Update(dt float32, in Input) {
	c.look(in)

	forward := c.Forward()
	right := forward.Cross(worldUp).Normalize()

	var dir math.Vec3
	if in.Held(ActionForward) {
		dir = dir.Add(forward)
	}
	if in.Held(ActionBack) {
		dir = dir.Sub(forward)
	}
	if in.Held(ActionLeft) {
		dir = dir.Sub(right)
	}
	if in.Held(ActionRight) {
		dir = dir.Add(right)
	}
	if in.Held(ActionUp) {
		dir = dir.Add(worldUp)
	}
	if in.Held(ActionDown) {
		dir = dir.Sub(worldUp)
	}

	if dir.Length() > moveEpsilon {
		c.Position = c.Position.Add(dir.Normalize().Scale(c.MoveSpeed * dt))
	}
	c.Position = c.Position.Clamp(c.MinBounds, c.MaxBounds)

	c.View = math.LookAt(c.Position, c.Position.Add(forward), worldUp)
}

// look applies the pointer delta since the previous call to yaw and pitch.
func (c *FlyCamera) look(in Input) {
	x, y := in.Pointer()
	if !c.tracking {
		c.lastX, c.lastY = x, y
		c.tracking = true
	}

	deltaX := float32(x - c.lastX)
	deltaY := float32(y - c.lastY)
	c.lastX, c.lastY = x, y

	c.Yaw += deltaX * c.LookSpeed
	c.Pitch -= deltaY * c.LookSpeed

	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}
