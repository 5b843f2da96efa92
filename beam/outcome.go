package beam

import (
	"errors"
	"strings"
)

// Outcome of a single RenderFrame call.
type Outcome int

const (
	// OutcomeFrame means a frame was rendered and presented.
	OutcomeFrame Outcome = iota

	// OutcomeSkipped means the frame was dropped because of a transient
	// surface state. The next redraw may succeed again.
	OutcomeSkipped

	// OutcomeFatal means rendering can not continue. The host loop must
	// terminate the application.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFrame:
		return "frame"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFatal:
		return "fatal"
	}

	return "unknown"
}

// Acquisition states reported by the presentation surface. The surface
// is driver and window-system managed; the transient ones are expected
// during resize or occlusion and are not application errors.
var (
	ErrAcquireTimeout  = errors.New("surface acquire timed out")
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrSurfaceLost     = errors.New("surface lost")
	ErrOutOfMemory     = errors.New("surface out of memory")
)

// classifyAcquire maps an error from Surface.GetCurrentTexture to one
// of the acquisition sentinels. The bindings report the wgpu status
// only through the error text, so unknown errors are matched by
// message. Errors that match nothing stay as they are and are treated
// as fatal.
func classifyAcquire(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAcquireTimeout),
		errors.Is(err, ErrSurfaceOutdated),
		errors.Is(err, ErrSurfaceLost),
		errors.Is(err, ErrOutOfMemory):
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return ErrAcquireTimeout
	case strings.Contains(msg, "outdated"):
		return ErrSurfaceOutdated
	case strings.Contains(msg, "lost"):
		return ErrSurfaceLost
	case strings.Contains(msg, "memory"):
		return ErrOutOfMemory
	}

	return err
}
