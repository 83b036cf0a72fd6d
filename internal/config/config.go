// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/midgard-terrain/internal/noise"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds grid and height settings.
type TerrainConfig struct {
	Width  int        `yaml:"width"`
	Depth  int        `yaml:"depth"`
	Scale  float64    `yaml:"scale"`
	Height float64    `yaml:"height"`
	Color  [3]float32 `yaml:"color,flow"`
}

// NoiseConfig selects and shapes the height field.
type NoiseConfig struct {
	Kind        string  `yaml:"kind"` // value, perlin or simplex
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	MoveSpeed  float32    `yaml:"move_speed"`
	LookSpeed  float32    `yaml:"look_speed"`
	Start      [3]float32 `yaml:"start,flow"`
	// SpawnAboveGround lifts the start position above the terrain surface.
	SpawnAboveGround bool `yaml:"spawn_above_ground"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Width:  50,
			Depth:  50,
			Scale:  5.0,
			Height: 12.0,
			Color:  [3]float32{0.3, 0.6, 0.2},
		},
		Noise: NoiseConfig{
			Kind:        noise.KindValue,
			Seed:        0,
			Octaves:     noise.DefaultOctaves,
			Persistence: noise.DefaultPersistence,
			Lacunarity:  noise.DefaultLacunarity,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Near:       0.1,
			Far:        100,
			MoveSpeed:  8,
			LookSpeed:  0.005,
			Start:      [3]float32{0, 0, 3},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would otherwise fail deep inside the viewer.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Terrain.Width <= 0 || c.Terrain.Depth <= 0 {
		errs = append(errs, fmt.Errorf("terrain grid %dx%d", c.Terrain.Width, c.Terrain.Depth))
	}
	if !slices.Contains(noise.Kinds(), c.Noise.Kind) {
		errs = append(errs, fmt.Errorf("noise kind %q", c.Noise.Kind))
	}
	if c.Noise.Octaves <= 0 {
		errs = append(errs, fmt.Errorf("noise octaves %d", c.Noise.Octaves))
	}
	if c.Camera.MoveSpeed <= 0 || c.Camera.LookSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera speeds move=%v look=%v", c.Camera.MoveSpeed, c.Camera.LookSpeed))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
