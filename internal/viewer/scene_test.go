package viewer

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/noise"
)

func TestNewGeneratorDefaults(t *testing.T) {
	gen, err := newGenerator(config.Default())
	if err != nil {
		t.Fatalf("newGenerator failed: %v", err)
	}

	// Default config reproduces the reference terrain.
	for _, p := range [][2]float64{{0, 0}, {3.5, -7.25}, {-20, 20}} {
		got := gen.HeightAt(p[0], p[1])
		want := terrain.TerrainHeight(p[0], p[1])
		if gomath.Abs(got-want) > 1e-9 {
			t.Errorf("HeightAt(%v, %v) = %f, want %f", p[0], p[1], got, want)
		}
	}
}

func TestNewGeneratorErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Noise.Kind = "worley"
	if _, err := newGenerator(cfg); !errors.Is(err, noise.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	cfg = config.Default()
	cfg.Terrain.Width = 0
	if _, err := newGenerator(cfg); !errors.Is(err, terrain.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestCameraConfig(t *testing.T) {
	cfg := config.Default().Camera

	cc := cameraConfig(cfg, nil)
	if cc.Position.X != 0 || cc.Position.Y != 0 || cc.Position.Z != 3 {
		t.Errorf("position = %v, want (0, 0, 3)", cc.Position)
	}
	if gomath.Abs(float64(cc.FOVY)-gomath.Pi/3) > 1e-6 {
		t.Errorf("FOVY = %f, want pi/3", cc.FOVY)
	}
	if cc.MoveSpeed != cfg.MoveSpeed || cc.LookSpeed != cfg.LookSpeed {
		t.Errorf("speeds = %f/%f", cc.MoveSpeed, cc.LookSpeed)
	}
}

func TestCameraConfigSpawnAboveGround(t *testing.T) {
	gen, err := newGenerator(config.Default())
	if err != nil {
		t.Fatalf("newGenerator failed: %v", err)
	}

	cfg := config.Default().Camera
	cfg.SpawnAboveGround = true
	cc := cameraConfig(cfg, gen)

	ground := gen.HeightAt(0, 3)
	want := gomath.Min(gomath.Max(ground+eyeHeight, 0), 20)
	if gomath.Abs(float64(cc.Position.Y)-want) > 1e-4 {
		t.Errorf("spawn y = %f, want %f (ground %f)", cc.Position.Y, want, ground)
	}
}

func TestCameraConfigClampsStart(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Start = [3]float32{50, -5, -50}

	cc := cameraConfig(cfg, nil)
	if cc.Position.X != 20 || cc.Position.Y != 0 || cc.Position.Z != -20 {
		t.Errorf("position = %v, want (20, 0, -20)", cc.Position)
	}
}
