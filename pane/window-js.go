//go:build js

package pane

import (
	"errors"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas  js.Value
	pending []Event

	width  uint32
	height uint32
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{canvas: canvas}
	win.width, win.height = viewportSize()

	win.canvas.Set("width", win.width)
	win.canvas.Set("height", win.height)

	win.configureListeners()

	return win, nil
}

func (g *jsWindow) Size() (uint32, uint32) {
	return g.width, g.height
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	// the canvas stays with the page
}

func (g *jsWindow) Run(dispatch func(Event) error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	done := make(chan error, 1)

	runOnce := js.FuncOf(func(this js.Value, args []js.Value) any {
		err := g.runOnce(dispatch)
		if err == nil {
			return true
		}

		if errors.Is(err, ExitLoop) {
			err = nil
		}

		done <- err
		return false
	})

	defer runOnce.Release()

	helper.Call("run", runOnce)

	return <-done
}

func (g *jsWindow) runOnce(dispatch func(Event) error) error {
	// the canvas backing store must follow the visual viewport
	width, height := viewportSize()
	if width != g.width || height != g.height {
		g.width, g.height = width, height

		g.canvas.Set("width", width)
		g.canvas.Set("height", height)

		g.pending = append(g.pending, ResizeEvent{Width: width, Height: height})
	}

	events := g.pending
	g.pending = nil

	events = append(events, RedrawEvent{})

	for _, event := range events {
		if err := dispatch(event); err != nil {
			return err
		}
	}

	return nil
}

func (g *jsWindow) configureListeners() {
	js.Global().Call("addEventListener", "pointermove", js.FuncOf(func(this js.Value, args []js.Value) any {
		ratio := js.Global().Get("devicePixelRatio").Float()

		x := args[0].Get("clientX").Float() * ratio
		y := args[0].Get("clientY").Float() * ratio

		g.pending = append(g.pending, PointerEvent{
			X: uint32(max(x, 0)),
			Y: uint32(max(y, 0)),
		})

		return nil
	}))
}

func viewportSize() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()

	return uint32(width * ratio), uint32(height * ratio)
}
