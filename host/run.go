package host

import (
	"fmt"
	"log/slog"

	"github.com/buransh/buransh/beam"
	"github.com/buransh/buransh/pane"
)

// Options configure the host window. Zero values fall back to the
// defaults below.
type Options struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

const (
	defaultTitle  = "Buransh test"
	defaultWidth  = 512
	defaultHeight = 512
)

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = defaultTitle
	}

	if o.Width <= 0 {
		o.Width = defaultWidth
	}

	if o.Height <= 0 {
		o.Height = defaultHeight
	}

	return o
}

// Run opens the window, initializes the render state and drives the
// event loop until the window closes or rendering fails fatally.
func Run(opts Options) error {
	opts = opts.withDefaults()

	win, err := pane.NewWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	state, err := beam.New(win)
	if err != nil {
		return fmt.Errorf("initialize rendering: %w", err)
	}

	defer state.Release()

	slog.Info("Starting up window.", slog.String("title", opts.Title))

	var times FrameTimes

	return win.Run(func(event pane.Event) error {
		switch event := event.(type) {
		case pane.ResizeEvent:
			slog.Debug("Resize",
				slog.Int("width", int(event.Width)),
				slog.Int("height", int(event.Height)),
			)

			state.Resize(event.Width, event.Height)

		case pane.PointerEvent:
			state.UpdatePointer(event.X, event.Y)

		case pane.RedrawEvent:
			outcome, err := state.RenderFrame()
			if outcome == beam.OutcomeFatal {
				return fmt.Errorf("render frame: %w", err)
			}

			if outcome == beam.OutcomeFrame {
				times.Tick()
			}

		case pane.CloseEvent:
			return pane.ExitLoop
		}

		return nil
	})
}
