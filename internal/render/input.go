package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"punyworld/internal/catalog"
)

// GLFWInput implements InputSource over a GLFW window, queuing one Event
// per key/resize callback and draining them in ReadInput. Grounded on the
// teacher's internal/input/input.go (callback-driven state with an
// RWMutex-guarded queue) but mapped directly to the renderer contract's
// events instead of a configurable action-binding table, and to the
// vi-style h/j/k/l movement keys and F2/F3 toggles
// original_source/demo/python/perlin.py's handle_events reads.
type GLFWInput struct {
	events []Event
}

// NewGLFWInput registers callbacks on window that translate GLFW key and
// resize events into queued Events.
func NewGLFWInput(window *glfw.Window) *GLFWInput {
	in := &GLFWInput{}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEscape:
			in.events = append(in.events, Event{Kind: EventQuit})
		case glfw.KeyH:
			in.events = append(in.events, Event{Kind: EventMove, Direction: catalog.West})
		case glfw.KeyL:
			in.events = append(in.events, Event{Kind: EventMove, Direction: catalog.East})
		case glfw.KeyJ:
			in.events = append(in.events, Event{Kind: EventMove, Direction: catalog.South})
		case glfw.KeyK:
			in.events = append(in.events, Event{Kind: EventMove, Direction: catalog.North})
		case glfw.KeyF2:
			in.events = append(in.events, Event{Kind: EventScreenshot})
		case glfw.KeyF3:
			in.events = append(in.events, Event{Kind: EventToggleDebug})
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		in.events = append(in.events, Event{Kind: EventResize, Width: width, Height: height})
	})

	window.SetCloseCallback(func(w *glfw.Window) {
		in.events = append(in.events, Event{Kind: EventQuit})
	})

	return in
}

// ReadInput implements InputSource: it pops the oldest queued event.
// Callers typically loop ReadInput until it reports false, once per
// frame, after calling glfw.PollEvents.
func (in *GLFWInput) ReadInput() (Event, bool) {
	if len(in.events) == 0 {
		return Event{}, false
	}
	e := in.events[0]
	in.events = in.events[1:]
	return e, true
}
