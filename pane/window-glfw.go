//go:build !js

package pane

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

func init() {
	// glfw must stay on the main OS thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win     *glfw.Window
	prof    interface{ Stop() }
	pending []Event
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if os.Getenv("BURANSH_PROFILE") == "1" {
		w.prof = profile.Start(profile.CPUProfile)
	}

	w.configureCallbacks()

	return w, nil
}

func (g *glfwWindow) Size() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(dispatch func(Event) error) error {
	for !g.win.ShouldClose() {
		glfw.PollEvents()

		// drain the events recorded by the callbacks, then ask for a frame
		events := g.pending
		g.pending = nil

		events = append(events, RedrawEvent{})

		for _, event := range events {
			err := dispatch(event)
			if errors.Is(err, ExitLoop) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *glfwWindow) configureCallbacks() {
	g.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		g.pending = append(g.pending, ResizeEvent{
			Width:  uint32(max(width, 0)),
			Height: uint32(max(height, 0)),
		})
	})

	g.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		// cursor positions arrive in content area coordinates, the
		// surface works in framebuffer pixels
		scaleX, scaleY := g.contentScale()

		x, y := cursorToSurface(xpos, ypos, scaleX, scaleY)
		g.pending = append(g.pending, PointerEvent{X: x, Y: y})
	})

	g.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			g.pending = append(g.pending, CloseEvent{})
		}
	})

	g.win.SetCloseCallback(func(_ *glfw.Window) {
		g.pending = append(g.pending, CloseEvent{})
	})
}

// contentScale is the framebuffer to content area ratio, larger than 1
// on HiDPI displays.
func (g *glfwWindow) contentScale() (float64, float64) {
	fbWidth, fbHeight := g.win.GetFramebufferSize()
	winWidth, winHeight := g.win.GetSize()

	scaleX, scaleY := 1.0, 1.0

	if winWidth > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
	}

	if winHeight > 0 {
		scaleY = float64(fbHeight) / float64(winHeight)
	}

	return scaleX, scaleY
}

// cursorToSurface maps a cursor position in content area coordinates to
// non-negative surface pixels. Positions go negative while dragging
// outside the window.
func cursorToSurface(xpos, ypos, scaleX, scaleY float64) (uint32, uint32) {
	return uint32(max(xpos*scaleX, 0)), uint32(max(ypos*scaleY, 0))
}
