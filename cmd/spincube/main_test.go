package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/spincube/internal/config"
	"github.com/taigrr/spincube/pkg/models"
	"github.com/taigrr/spincube/pkg/render"
)

func TestRunSnapshot(t *testing.T) {
	for _, raster := range []string{config.RasterGG, config.RasterFramebuffer} {
		t.Run(raster, func(t *testing.T) {
			cfg := config.Default()
			cfg.Snapshot.Width = 160
			cfg.Snapshot.Height = 120
			cfg.Snapshot.Step = 40
			cfg.Snapshot.Raster = raster

			path := filepath.Join(t.TempDir(), "cube.png")
			if err := runSnapshot(cfg, models.Cube(), path); err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 120 {
				t.Errorf("bounds = %v, want 160x120", img.Bounds())
			}

			lit := false
			for y := 0; y < 120 && !lit; y++ {
				for x := 0; x < 160; x++ {
					if _, g, _, _ := img.At(x, y).RGBA(); g > 0x8000 {
						lit = true
						break
					}
				}
			}
			if !lit {
				t.Error("snapshot has no stroke pixels")
			}
		})
	}
}

func TestNewWireframe(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Offset = [3]float64{0, 0, -6}

	wf, err := newWireframe(cfg, models.Cube(), 64)
	if err != nil {
		t.Fatal(err)
	}
	if wf.Projector.Offset.Z != -6 {
		t.Errorf("offset = %v, want z -6", wf.Projector.Offset)
	}
	if got := wf.Projector.RenderSize(); got.X != 64 || got.Y != 64 {
		t.Errorf("render size = %v, want 64x64", got)
	}
	if wf.Stroke.Color != render.ColorGreen {
		t.Errorf("stroke color = %v, want green", wf.Stroke.Color)
	}
}
