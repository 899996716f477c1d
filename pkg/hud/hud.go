// Package hud measures and draws the frame rate overlay.
package hud

import (
	"fmt"
	"math"
	"time"

	"github.com/taigrr/spincube/pkg/math3d"
	"github.com/taigrr/spincube/pkg/render"
)

const (
	// DefaultWindow is the length of one counting window.
	DefaultWindow = 500 * time.Millisecond
	// DefaultAlpha is the weight of the previous average.
	DefaultAlpha = 0.2
)

// FrameRate smooths frame counts over fixed windows with an exponentially
// weighted moving average. It belongs to the render loop and is not safe
// for concurrent use.
type FrameRate struct {
	window time.Duration
	alpha  float64

	avg         float64
	frames      int
	windowStart time.Time
	started     bool
}

// NewFrameRate creates a reporter. A non-positive window selects
// DefaultWindow; alpha outside [0, 1) selects DefaultAlpha.
func NewFrameRate(window time.Duration, alpha float64) *FrameRate {
	if window <= 0 {
		window = DefaultWindow
	}
	if alpha < 0 || alpha >= 1 {
		alpha = DefaultAlpha
	}
	return &FrameRate{
		window: window,
		alpha:  alpha,
		avg:    1,
	}
}

// Frame records one frame drawn at now. The first call opens the first
// window.
func (f *FrameRate) Frame(now time.Time) {
	if !f.started {
		f.windowStart = now
		f.started = true
	}
	f.frames++

	if now.Sub(f.windowStart) >= f.window {
		f.avg = f.alpha*f.avg + (1-f.alpha)*float64(f.frames)
		f.frames = 0
		f.windowStart = now
	}
}

// Value returns the smoothed rate in frames per second.
func (f *FrameRate) Value() float64 {
	return f.avg * float64(time.Second) / float64(f.window)
}

func (f *FrameRate) String() string {
	// Halves round away from zero.
	return fmt.Sprintf("%02.0f FPS", math.Round(f.Value()))
}

// HUD draws the frame rate onto a surface.
type HUD struct {
	Rate  *FrameRate
	Style render.TextStyle
	At    math3d.Vec2
	Show  bool
}

// New creates a visible HUD at the default position.
func New(rate *FrameRate, style render.TextStyle) *HUD {
	return &HUD{
		Rate:  rate,
		Style: style,
		At:    math3d.V2(10, 20),
		Show:  true,
	}
}

// Draw writes the current rate to s when the HUD is shown.
func (h *HUD) Draw(s render.Surface) {
	if !h.Show {
		return
	}
	s.DrawText(h.Rate.String(), h.At, h.Style)
}
