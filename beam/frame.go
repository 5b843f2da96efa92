package beam

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderFrame acquires the next presentable image, clears it to the
// pointer color and presents it. Transient acquisition states skip the
// frame without mutating any state; a lost surface is reconfigured at
// the cached size first. The returned error is non-nil only for
// OutcomeFatal.
func (s *State) RenderFrame() (Outcome, error) {
	frame, err := s.surface.GetCurrentTexture()
	if err != nil {
		return s.acquireFailed(classifyAcquire(err))
	}

	guard := newReleaseGuard(frame)
	defer guard.Release()

	if err := s.clear(frame); err != nil {
		return OutcomeFatal, fmt.Errorf("record clear pass: %w", err)
	}

	s.surface.Present()

	// a presented frame must not be released
	guard.Keep()

	return OutcomeFrame, nil
}

func (s *State) acquireFailed(err error) (Outcome, error) {
	switch {
	case errors.Is(err, ErrAcquireTimeout), errors.Is(err, ErrSurfaceOutdated):
		// expected during window manager churn, retry on the next redraw
		slog.Warn("Skipping frame", slog.Any("cause", err))
		return OutcomeSkipped, nil

	case errors.Is(err, ErrSurfaceLost):
		// reapplying the configuration at the current size restores the surface
		slog.Warn("Surface lost, reconfiguring",
			slog.Int("width", int(s.width)),
			slog.Int("height", int(s.height)),
		)

		s.Resize(s.width, s.height)
		return OutcomeSkipped, nil

	default:
		return OutcomeFatal, fmt.Errorf("acquire surface texture: %w", err)
	}
}

// clear records and submits a single render pass that clears the frame
// to the pointer color. No draw calls and no depth or stencil
// attachment, the pass exists only to perform the clear.
func (s *State) clear(frame *wgpu.Texture) error {
	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create frame view: %w", err)
	}

	// the view must not outlive the command recording
	viewGuard := newReleaseGuard(view)
	defer viewGuard.Release()

	enc, err := s.ctx.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearFrame",
	})

	if err != nil {
		return err
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearFrame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: s.clearColor(),
			},
		},
	})

	passGuard := newReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearFrame"})
	if err != nil {
		return err
	}

	defer buf.Release()

	// recording is done, release the attachment view before submitting
	viewGuard.Release()

	s.ctx.Queue.Submit(buf)

	return nil
}

// clearColor visualizes the normalized pointer position: red is x over
// the surface width, green is y over the height, blue and alpha are
// constant. Pointer coordinates are clamped into the surface bounds
// before dividing; Resize guarantees the dimensions are positive.
func (s *State) clearColor() wgpu.Color {
	width, height := s.config.Width, s.config.Height

	x := clamp(s.pointerX, 0, width-1)
	y := clamp(s.pointerY, 0, height-1)

	return wgpu.Color{
		R: float64(x) / float64(width),
		G: float64(y) / float64(height),
		B: 0.3,
		A: 1.0,
	}
}

type releaser interface {
	Release()
}

// releaseGuard releases its value unless Keep was called first.
type releaseGuard struct {
	value releaser
}

func newReleaseGuard(value releaser) releaseGuard {
	return releaseGuard{value: value}
}

func (r *releaseGuard) Keep() {
	r.value = nil
}

func (r *releaseGuard) Release() {
	if r.value != nil {
		r.value.Release()
		r.value = nil
	}
}
