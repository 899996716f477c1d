package hud

import (
	"math"
	"testing"
	"time"

	"github.com/taigrr/spincube/pkg/math3d"
	"github.com/taigrr/spincube/pkg/render"
)

func TestFrameRateInitial(t *testing.T) {
	f := NewFrameRate(500*time.Millisecond, 0.2)
	if got := f.Value(); math.Abs(got-2) > 1e-9 {
		t.Errorf("Value() = %v, want 2", got)
	}
	if got := f.String(); got != "02 FPS" {
		t.Errorf("String() = %q, want %q", got, "02 FPS")
	}
}

func TestFrameRateDefaults(t *testing.T) {
	tests := []struct {
		name   string
		window time.Duration
		alpha  float64
	}{
		{"zero window", 0, 0.2},
		{"negative alpha", time.Second, -0.1},
		{"alpha one", time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrameRate(tt.window, tt.alpha)
			if f.window <= 0 {
				t.Errorf("window = %v", f.window)
			}
			if f.alpha < 0 || f.alpha >= 1 {
				t.Errorf("alpha = %v", f.alpha)
			}
		})
	}
}

func TestFrameRateSteady(t *testing.T) {
	// 25 frames per 500ms window converges to 50 FPS.
	f := NewFrameRate(500*time.Millisecond, 0.2)
	now := time.Unix(0, 0)

	f.Frame(now)
	for range 25 * 20 {
		now = now.Add(20 * time.Millisecond)
		f.Frame(now)
	}

	if got := f.Value(); math.Abs(got-50) > 1e-6 {
		t.Errorf("Value() = %v, want 50", got)
	}
	if got := f.String(); got != "50 FPS" {
		t.Errorf("String() = %q, want %q", got, "50 FPS")
	}
}

func TestFrameRateEWMA(t *testing.T) {
	f := NewFrameRate(time.Second, 0.5)
	t0 := time.Unix(100, 0)

	f.Frame(t0)
	f.Frame(t0.Add(300 * time.Millisecond))
	f.Frame(t0.Add(time.Second))

	// avg = 0.5*1 + 0.5*3
	if got := f.Value(); math.Abs(got-2) > 1e-9 {
		t.Fatalf("after first window Value() = %v, want 2", got)
	}

	f.Frame(t0.Add(2 * time.Second))
	// avg = 0.5*2 + 0.5*1
	if got := f.Value(); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("after second window Value() = %v, want 1.5", got)
	}
}

func TestFrameRateNoUpdateInsideWindow(t *testing.T) {
	f := NewFrameRate(time.Second, 0.2)
	t0 := time.Unix(0, 0)
	for i := range 100 {
		f.Frame(t0.Add(time.Duration(i) * time.Millisecond))
	}
	if got := f.Value(); got != 1 {
		t.Errorf("Value() = %v before the window closed, want 1", got)
	}
}

type textSurface struct {
	texts []string
	at    []math3d.Vec2
	style []render.TextStyle
}

func (s *textSurface) Size() (int, int) { return 100, 100 }

func (s *textSurface) Clear(render.Color) {}

func (s *textSurface) DrawLine(_, _ math3d.Vec2, _ render.Stroke) {}

func (s *textSurface) DrawText(text string, at math3d.Vec2, style render.TextStyle) {
	s.texts = append(s.texts, text)
	s.at = append(s.at, at)
	s.style = append(s.style, style)
}

func TestHUDDraw(t *testing.T) {
	style := render.TextStyle{Color: render.ColorYellow, Size: 16}
	h := New(NewFrameRate(500*time.Millisecond, 0.2), style)
	s := &textSurface{}

	h.Draw(s)
	if len(s.texts) != 1 || s.texts[0] != "02 FPS" {
		t.Fatalf("texts = %q, want [\"02 FPS\"]", s.texts)
	}
	if s.at[0] != math3d.V2(10, 20) {
		t.Errorf("drawn at %v, want (10, 20)", s.at[0])
	}
	if s.style[0] != style {
		t.Errorf("style = %+v, want %+v", s.style[0], style)
	}

	h.Show = false
	h.Draw(s)
	if len(s.texts) != 1 {
		t.Error("hidden HUD still drew text")
	}
}

func TestFrameRateStringRoundsHalfUp(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{1.25, "03 FPS"},
		{0.75, "02 FPS"},
		{1.2, "02 FPS"},
		{30.25, "61 FPS"},
	}

	for _, tt := range tests {
		f := NewFrameRate(500*time.Millisecond, 0.2)
		f.avg = tt.avg
		if got := f.String(); got != tt.want {
			t.Errorf("avg %v: String() = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
