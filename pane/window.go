package pane

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// ExitLoop stops the event loop when returned from a dispatch callback.
// It signals a clean shutdown, not an error.
var ExitLoop = errors.New("exit event loop")

// Window is the OS window a presentation surface can be bound to.
// There is a glfw implementation for desktop builds and a canvas
// implementation for js.
type Window interface {
	// Size returns the current physical pixel size of the window.
	Size() (uint32, uint32)

	// SurfaceDescriptor describes this window to webgpu.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run pumps OS events and hands them to dispatch one at a time,
	// followed by one RedrawEvent per turn. Returning ExitLoop from
	// dispatch stops the loop without an error.
	Run(dispatch func(Event) error) error

	Terminate()
}

// Event is a single window event delivered to the dispatch callback.
type Event interface {
	isEvent()
}

// ResizeEvent carries the new physical pixel size of the window.
// Either dimension may be zero while the window is minimized.
type ResizeEvent struct {
	Width, Height uint32
}

// PointerEvent carries the cursor position in physical surface pixels,
// the same coordinate space Size reports, clamped to non-negative
// values.
type PointerEvent struct {
	X, Y uint32
}

// RedrawEvent asks for a new frame to be rendered.
type RedrawEvent struct{}

// CloseEvent is sent when the user asks to close the window.
type CloseEvent struct{}

func (ResizeEvent) isEvent()  {}
func (PointerEvent) isEvent() {}
func (RedrawEvent) isEvent()  {}
func (CloseEvent) isEvent()   {}
