// Package viewer implements the terrain viewer's frame loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/input"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/window"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

const title = "Midgard Terrain"

var skyColor = [3]float32{0.55, 0.7, 0.9}

// Viewer owns the window, the uploaded terrain and the camera.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	terrain  *renderer.TerrainRenderer
	input    *input.Input
	camera   *camera.FlyCamera
	gen      *terrain.Generator

	screenshots *debug.ScreenshotCapture
	wireframe   bool

	log *zap.Logger
}

// New creates the window, builds the terrain and uploads it.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("noise", cfg.Noise.Kind),
		zap.Int64("seed", cfg.Noise.Seed),
	)

	var err error
	v.gen, err = newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.GetSize()

	// Renderer must come after the window, since the GL context must exist
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: skyColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.terrain, err = renderer.NewTerrainRenderer()
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.terrain.FogColor = skyColor
	v.terrain.FogFar = cfg.Camera.Far

	start := time.Now()
	mesh := v.gen.Build()
	if err := v.terrain.Upload(mesh); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload terrain: %w", err)
	}
	v.log.Info("terrain ready",
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)),
	)

	v.camera = camera.NewFlyCamera(cameraConfig(cfg.Camera, v.gen), width, height)
	v.input = input.New()
	v.screenshots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "terrain")
	v.window.CapturePointer(true)

	return v, nil
}

// Run runs the frame loop until the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.resize()
			case input.EventFocusGained:
				v.camera.Reset()
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					v.running = false
				case sdl.SCANCODE_F1:
					v.wireframe = !v.wireframe
					v.renderer.SetWireframe(v.wireframe)
				}
			}
		}

		v.camera.Update(float32(dt), v.input)

		v.renderer.Begin()
		v.terrain.Draw(v.camera.View, v.camera.Projection)

		// Read back before the swap, while the back buffer holds this frame.
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("x", v.camera.Position.X),
				zap.Float32("y", v.camera.Position.Y),
				zap.Float32("z", v.camera.Position.Z),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) screenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// resize updates the viewport. The camera projection is fixed at
// construction, so it is rebuilt here with the new aspect ratio.
func (v *Viewer) resize() {
	width, height := v.window.GetSize()
	v.renderer.Resize(width, height)

	prev := v.camera
	v.camera = camera.NewFlyCamera(cameraConfig(v.cfg.Camera, nil), width, height)
	v.camera.Position = prev.Position
	v.camera.Yaw = prev.Yaw
	v.camera.Pitch = prev.Pitch
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.terrain != nil {
		v.terrain.Destroy()
		v.terrain = nil
	}
	if v.window != nil {
		v.window.CapturePointer(false)
		v.window.Close()
		v.window = nil
	}
}
