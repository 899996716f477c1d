// Package config handles spincube configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/taigrr/spincube/pkg/anim"
	"github.com/taigrr/spincube/pkg/hud"
	"github.com/taigrr/spincube/pkg/math3d"
	"github.com/taigrr/spincube/pkg/render"
)

// Config holds all settings.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Animation AnimationConfig `yaml:"animation"`
	FPS       FPSConfig       `yaml:"fps"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Model     ModelConfig     `yaml:"model"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RenderConfig holds projection and stroke settings.
type RenderConfig struct {
	Size       float64      `yaml:"size"`
	Offset     [3]float64   `yaml:"offset,flow"`
	Background string       `yaml:"background"`
	Stroke     StrokeConfig `yaml:"stroke"`
}

// StrokeConfig holds line drawing settings.
type StrokeConfig struct {
	Color     string  `yaml:"color"`
	Width     float64 `yaml:"width"`
	Antialias bool    `yaml:"antialias"`
}

// AnimationConfig holds clock settings.
type AnimationConfig struct {
	MaxStep  int           `yaml:"max_step"`
	Interval time.Duration `yaml:"interval"`
}

// FPSConfig holds frame rate overlay settings.
type FPSConfig struct {
	Show     bool          `yaml:"show"`
	Window   time.Duration `yaml:"window"`
	Alpha    float64       `yaml:"alpha"`
	Color    string        `yaml:"color"`
	TextSize float64       `yaml:"text_size"`
}

// TerminalConfig holds terminal mode settings.
type TerminalConfig struct {
	RenderSize float64 `yaml:"render_size"`
	FPSLimit   int     `yaml:"fps_limit"` // 0 = uncapped
}

// SnapshotConfig holds PNG snapshot settings.
type SnapshotConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Step   int    `yaml:"step"`
	Raster string `yaml:"raster"` // "gg" or "fb"
}

// ModelConfig selects the geometry.
type ModelConfig struct {
	Path string `yaml:"path"` // empty = built-in cube
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Raster backends for snapshots.
const (
	RasterGG          = "gg"
	RasterFramebuffer = "fb"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with the reference values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Size:       render.DefaultRenderSize,
			Offset:     [3]float64{0, 0, -4},
			Background: "0,0,0",
			Stroke: StrokeConfig{
				Color:     "0,255,0",
				Width:     2,
				Antialias: false,
			},
		},
		Animation: AnimationConfig{
			MaxStep:  anim.DefaultMaxStep,
			Interval: anim.DefaultInterval,
		},
		FPS: FPSConfig{
			Show:     true,
			Window:   hud.DefaultWindow,
			Alpha:    hud.DefaultAlpha,
			Color:    "255,255,0",
			TextSize: 16,
		},
		Terminal: TerminalConfig{
			RenderSize: 64,
			FPSLimit:   60,
		},
		Snapshot: SnapshotConfig{
			Width:  800,
			Height: 600,
			Step:   0,
			Raster: RasterGG,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Render.Size > 0, "render.size must be positive, got %v", c.Render.Size)
	check(c.Render.Stroke.Width > 0, "render.stroke.width must be positive, got %v", c.Render.Stroke.Width)
	check(c.Animation.MaxStep >= 1, "animation.max_step must be at least 1, got %d", c.Animation.MaxStep)
	check(c.Animation.Interval > 0, "animation.interval must be positive, got %v", c.Animation.Interval)
	check(c.FPS.Window > 0, "fps.window must be positive, got %v", c.FPS.Window)
	check(c.FPS.Alpha >= 0 && c.FPS.Alpha < 1, "fps.alpha must be in [0, 1), got %v", c.FPS.Alpha)
	check(c.FPS.TextSize > 0, "fps.text_size must be positive, got %v", c.FPS.TextSize)
	check(c.Terminal.RenderSize > 0, "terminal.render_size must be positive, got %v", c.Terminal.RenderSize)
	check(c.Terminal.FPSLimit >= 0, "terminal.fps_limit must not be negative, got %d", c.Terminal.FPSLimit)
	check(c.Snapshot.Width > 0 && c.Snapshot.Height > 0,
		"snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	check(c.Snapshot.Raster == RasterGG || c.Snapshot.Raster == RasterFramebuffer,
		"snapshot.raster must be %q or %q, got %q", RasterGG, RasterFramebuffer, c.Snapshot.Raster)
	check(slices.Contains(logLevels, c.Logging.Level),
		"logging.level must be one of %v, got %q", logLevels, c.Logging.Level)

	for name, s := range map[string]string{
		"render.background":   c.Render.Background,
		"render.stroke.color": c.Render.Stroke.Color,
		"fps.color":           c.FPS.Color,
	} {
		if _, err := render.ParseRGB(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// OffsetVec returns the back-translation as a vector.
func (r RenderConfig) OffsetVec() math3d.Vec3 {
	return math3d.V3(r.Offset[0], r.Offset[1], r.Offset[2])
}

// BackgroundColor returns the parsed background color. Validate first.
func (r RenderConfig) BackgroundColor() render.Color {
	c, _ := render.ParseRGB(r.Background)
	return c
}

// StrokeStyle returns the parsed stroke. Validate first.
func (r RenderConfig) StrokeStyle() render.Stroke {
	c, _ := render.ParseRGB(r.Stroke.Color)
	return render.Stroke{
		Color:     c,
		Width:     r.Stroke.Width,
		Antialias: r.Stroke.Antialias,
	}
}

// TextStyle returns the parsed overlay style. Validate first.
func (f FPSConfig) TextStyle() render.TextStyle {
	c, _ := render.ParseRGB(f.Color)
	return render.TextStyle{
		Color: c,
		Size:  f.TextSize,
	}
}
