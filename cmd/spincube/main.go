// spincube - Animated Wireframe Viewer
// Spins a wireframe model about its vertical axis in your terminal, or
// renders a single frame to a PNG.
//
// Controls:
//
//	Space       - Pause/resume the rotation
//	F           - Toggle the FPS overlay
//	Esc, Q      - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/spincube/internal/config"
	"github.com/taigrr/spincube/internal/logger"
	"github.com/taigrr/spincube/pkg/anim"
	"github.com/taigrr/spincube/pkg/hud"
	"github.com/taigrr/spincube/pkg/math3d"
	"github.com/taigrr/spincube/pkg/models"
	"github.com/taigrr/spincube/pkg/render"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "spincube - Animated Wireframe Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: spincube [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space       - Pause/resume\n")
		fmt.Fprintf(os.Stderr, "  F           - Toggle FPS overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc, Q      - Quit\n")
	}
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		return err
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	snapshot := config.SnapshotPath()

	// The terminal screen owns stdout while it runs; log to the file only.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, snapshot != ""); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if cfgPath != "" {
		logger.Info("config loaded", zap.String("path", cfgPath))
	}

	model, err := models.Load(cfg.Model.Path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	logger.Info("model loaded",
		zap.String("name", model.Name),
		zap.Int("vertices", model.VertexCount()),
		zap.Int("faces", model.FaceCount()),
		zap.Int("edges", model.EdgeCount()),
	)

	if snapshot != "" {
		return runSnapshot(cfg, model, snapshot)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	return runTerminal(ctx, cancel, cfg, model)
}

// newWireframe builds a projector around the model's centroid.
func newWireframe(cfg *config.Config, model *models.Model, renderSize float64) (*render.Wireframe, error) {
	pivot, err := model.Centroid()
	if err != nil {
		return nil, fmt.Errorf("centroid: %w", err)
	}
	projector := render.NewProjector(pivot)
	projector.Offset = cfg.Render.OffsetVec()
	projector.SetRenderSize(math3d.V2(renderSize, renderSize))
	return render.NewWireframe(projector, cfg.Render.StrokeStyle()), nil
}

// snapshotSurface is a surface that can be written to disk.
type snapshotSurface interface {
	render.Surface
	SavePNG(path string) error
}

func runSnapshot(cfg *config.Config, model *models.Model, path string) error {
	wf, err := newWireframe(cfg, model, cfg.Render.Size)
	if err != nil {
		return err
	}

	clock := anim.NewClock(cfg.Animation.MaxStep, cfg.Animation.Interval)
	clock.SetStep(cfg.Snapshot.Step)

	var surface snapshotSurface
	switch cfg.Snapshot.Raster {
	case config.RasterFramebuffer:
		surface = render.NewFramebuffer(cfg.Snapshot.Width, cfg.Snapshot.Height)
	default:
		canvas, err := render.NewCanvas(cfg.Snapshot.Width, cfg.Snapshot.Height)
		if err != nil {
			return err
		}
		defer canvas.Close()
		surface = canvas
	}

	surface.Clear(cfg.Render.BackgroundColor())
	stats := wf.Draw(surface, model, clock.Angle())
	logger.Debug("frame drawn",
		zap.Int("step", clock.Step()),
		zap.Int("segments", stats.Segments),
		zap.Int("skipped", stats.Skipped),
	)

	if err := surface.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	fmt.Printf("Saved %s (%dx%d, step %d/%d)\n", filepath.Base(path),
		cfg.Snapshot.Width, cfg.Snapshot.Height, clock.Step(), clock.MaxStep())
	return nil
}

type action int

const (
	actionPause action = iota
	actionToggleHUD
)

func runTerminal(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, model *models.Model) error {
	wf, err := newWireframe(cfg, model, cfg.Terminal.RenderSize)
	if err != nil {
		return err
	}
	background := cfg.Render.BackgroundColor()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			logger.Warn("terminal shutdown", zap.Error(err))
		}
		logger.Info("shutdown")
	}

	screen := render.NewTerminalRenderer(term, width, height)
	logger.Debug("terminal size", zap.Int("cols", width), zap.Int("rows", height))

	overlay := hud.New(hud.NewFrameRate(cfg.FPS.Window, cfg.FPS.Alpha), cfg.FPS.TextStyle())
	overlay.Show = cfg.FPS.Show

	clock := anim.NewClock(cfg.Animation.MaxStep, cfg.Animation.Interval)
	clock.Start(ctx)
	defer clock.Stop()

	resizes := make(chan [2]int, 1)
	actions := make(chan action, 8)

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				// Only the latest size matters.
				select {
				case <-resizes:
				default:
				}
				resizes <- [2]int{ev.Width, ev.Height}
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("space"):
					actions <- actionPause
				case ev.MatchString("f"):
					actions <- actionToggleHUD
				}
			}
		}
	}()

	var targetDuration time.Duration
	if cfg.Terminal.FPSLimit > 0 {
		targetDuration = time.Second / time.Duration(cfg.Terminal.FPSLimit)
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case size := <-resizes:
			width, height = size[0], size[1]
			term.Erase()
			term.Resize(width, height)
			screen = render.NewTerminalRenderer(term, width, height)
			logger.Debug("terminal size", zap.Int("cols", width), zap.Int("rows", height))
		case a := <-actions:
			switch a {
			case actionPause:
				if clock.Running() {
					clock.Stop()
				} else {
					clock.Start(ctx)
				}
			case actionToggleHUD:
				overlay.Show = !overlay.Show
			}
		default:
		}

		now := time.Now()

		remaps := wf.Projector.RemapCount()
		screen.Clear(background)
		stats := wf.Draw(screen, model, clock.Angle())
		if wf.Projector.RemapCount() != remaps {
			fbw, fbh := screen.Size()
			logger.Debug("remap recomputed", zap.Int("width", fbw), zap.Int("height", fbh))
		}
		if stats.Skipped > 0 {
			logger.Debug("skipped degenerate segments", zap.Int("count", stats.Skipped))
		}

		overlay.Rate.Frame(now)
		overlay.Draw(screen)

		screen.Render()
		if err := screen.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
