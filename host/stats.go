package host

import (
	"log/slog"
	"time"
)

// FrameTimes keeps a moving average of the time between presented
// frames and reports it periodically at debug level.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	lastTime time.Time
}

// Tick records one presented frame.
func (t *FrameTimes) Tick() {
	now := time.Now()

	if !t.lastTime.IsZero() {
		t.update(now.Sub(t.lastTime))
	}

	t.lastTime = now
	t.FrameCount++

	if t.FrameCount%256 == 0 {
		slog.Debug("Frame times",
			slog.Uint64("frames", t.FrameCount),
			slog.Duration("average", t.AverageDuration),
			slog.Duration("max", t.MaxDuration),
		)
	}
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}
