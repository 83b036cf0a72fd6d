// Package input turns SDL2 events into the held-action and pointer state the camera reads.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusGained
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Bindings maps scancodes to camera actions. Several keys may share an action.
var Bindings = map[sdl.Scancode]camera.Action{
	sdl.SCANCODE_W:     camera.ActionForward,
	sdl.SCANCODE_S:     camera.ActionBack,
	sdl.SCANCODE_A:     camera.ActionLeft,
	sdl.SCANCODE_D:     camera.ActionRight,
	sdl.SCANCODE_SPACE: camera.ActionUp,
	sdl.SCANCODE_C:     camera.ActionDown,
	sdl.SCANCODE_X:     camera.ActionDown,
}

// Input tracks keyboard and pointer state across frames.
// It implements camera.Input.
type Input struct {
	events []Event
	keys   map[sdl.Scancode]bool

	// Pointer is the sum of relative mouse motion, so it keeps growing
	// while the cursor is captured.
	pointerX, pointerY float64
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		keys:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and refreshes held keys and the pointer.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				i.events = append(i.events, Event{Type: EventFocusGained})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				clear(i.keys)
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				i.keys[e.Keysym.Scancode] = true
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				}
			case sdl.KEYUP:
				i.keys[e.Keysym.Scancode] = false
			}

		case *sdl.MouseMotionEvent:
			i.pointerX += float64(e.XRel)
			i.pointerY += float64(e.YRel)
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Held reports whether any key bound to the action is down.
func (i *Input) Held(a camera.Action) bool {
	for key, action := range Bindings {
		if action == a && i.keys[key] {
			return true
		}
	}
	return false
}

// Pointer returns the accumulated pointer position.
func (i *Input) Pointer() (x, y float64) {
	return i.pointerX, i.pointerY
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

var _ camera.Input = (*Input)(nil)
