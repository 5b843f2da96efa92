package beam

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/exp/constraints"
)

// Window is the subset of the host window the render state needs.
type Window interface {
	Size() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// presenter is the window backed surface as the render state sees it.
// *wgpu.Surface satisfies it, tests substitute a scripted fake.
type presenter interface {
	Configure(adapter *wgpu.Adapter, device *wgpu.Device, config *wgpu.SurfaceConfiguration)
	GetCurrentTexture() (*wgpu.Texture, error)
	Present()
}

// State owns everything needed to put frames on a window: the
// negotiated Context, the surface configuration, the last applied
// surface size and the last known pointer position. The event loop is
// single threaded and every field has exactly one writer, so no
// locking is involved.
type State struct {
	ctx     *Context
	surface presenter
	config  *wgpu.SurfaceConfiguration

	// last size the surface was configured with
	width  uint32
	height uint32

	pointerX uint32
	pointerY uint32
}

// New negotiates a device against the window's surface and applies the
// initial surface configuration at the window's current physical size.
// Fails if no presentable adapter or device exists.
func New(win Window) (*State, error) {
	width, height := win.Size()

	ctx, err := NewContext(win.SurfaceDescriptor())
	if err != nil {
		return nil, fmt.Errorf("negotiate device: %w", err)
	}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)

	config, err := surfaceConfig(caps, width, height)
	if err != nil {
		ctx.Release()
		return nil, err
	}

	slog.Info("Configure surface",
		slog.Any("format", config.Format),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	ctx.Surface.Configure(ctx.Adapter, ctx.Device, config)

	return &State{
		ctx:     ctx,
		surface: ctx.Surface,
		config:  config,
		width:   width,
		height:  height,
	}, nil
}

// surfaceConfig builds the initial surface configuration from the
// driver reported capabilities, accepting the reported priority order
// as is. A window that reports a zero dimension can not be configured
// and there is no earlier valid size to fall back to at this point.
func surfaceConfig(caps wgpu.SurfaceCapabilities, width, height uint32) (*wgpu.SurfaceConfiguration, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("window reports invalid size %dx%d", width, height)
	}

	if len(caps.Formats) == 0 || len(caps.PresentModes) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("incomplete surface capabilities: %d formats, %d present modes, %d alpha modes",
			len(caps.Formats), len(caps.PresentModes), len(caps.AlphaModes))
	}

	return &wgpu.SurfaceConfiguration{
		Usage:  wgpu.TextureUsageRenderAttachment,
		Format: preferredFormat(caps.Formats),
		Width:  width,
		Height: height,

		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}, nil
}

// Resize reapplies the surface configuration at the new physical size.
// A zero dimension means the window is minimized or degenerate; such a
// configuration must never be applied and the call is ignored. Safe to
// call repeatedly with identical dimensions.
func (s *State) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	s.config.Width = width
	s.config.Height = height
	s.width = width
	s.height = height

	// may block while the driver reallocates presentation buffers
	s.surface.Configure(s.ctx.Adapter, s.ctx.Device, s.config)
}

// UpdatePointer stores the last pointer position. Pure state mutation,
// consumed by the next frame's clear color.
func (s *State) UpdatePointer(x, y uint32) {
	s.pointerX = x
	s.pointerY = y
}

// ConfigSize returns the dimensions of the applied surface
// configuration.
func (s *State) ConfigSize() (uint32, uint32) {
	return s.config.Width, s.config.Height
}

// Pointer returns the last pointer position.
func (s *State) Pointer() (uint32, uint32) {
	return s.pointerX, s.pointerY
}

// Release frees the GPU resources. The window must still be alive when
// this is called.
func (s *State) Release() {
	if s.ctx != nil {
		s.ctx.Release()
		s.ctx = nil
	}
}

func clamp[T constraints.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}
