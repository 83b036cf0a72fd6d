package viewer

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/noise"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

// eyeHeight is how far above the ground a spawned camera starts.
const eyeHeight = 1.7

// newGenerator builds the terrain generator described by the config.
func newGenerator(cfg *config.Config) (*terrain.Generator, error) {
	base, err := noise.NewSource(cfg.Noise.Kind, cfg.Noise.Seed)
	if err != nil {
		return nil, err
	}

	field := &noise.Fractal{
		Base:        base,
		Octaves:     cfg.Noise.Octaves,
		Persistence: cfg.Noise.Persistence,
		Lacunarity:  cfg.Noise.Lacunarity,
	}

	gen, err := terrain.New(terrain.Params{
		Width:  cfg.Terrain.Width,
		Depth:  cfg.Terrain.Depth,
		Scale:  cfg.Terrain.Scale,
		Height: cfg.Terrain.Height,
		Color:  cfg.Terrain.Color,
	}, field)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	return gen, nil
}

// cameraConfig converts the camera settings, optionally lifting the start
// position above the terrain surface.
func cameraConfig(cfg config.CameraConfig, gen *terrain.Generator) camera.Config {
	cc := camera.DefaultConfig()
	cc.Position = math.Vec3{X: cfg.Start[0], Y: cfg.Start[1], Z: cfg.Start[2]}
	cc.FOVY = cfg.FOVDegrees * gomath.Pi / 180
	cc.Near = cfg.Near
	cc.Far = cfg.Far
	cc.MoveSpeed = cfg.MoveSpeed
	cc.LookSpeed = cfg.LookSpeed

	if cfg.SpawnAboveGround && gen != nil {
		ground := gen.HeightAt(float64(cc.Position.X), float64(cc.Position.Z))
		if y := float32(ground + eyeHeight); y > cc.Position.Y {
			cc.Position.Y = y
		}
	}
	cc.Position = cc.Position.Clamp(cc.MinBounds, cc.MaxBounds)
	return cc
}
