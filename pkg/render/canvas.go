package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/taigrr/spincube/pkg/math3d"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is an antialiased raster Surface backed by a gg context. It is
// used for PNG snapshots.
type Canvas struct {
	dc       *gg.Context
	source   *text.FontSource
	face     text.Face
	faceSize float64
	err      error
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int) (*Canvas, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{
		dc:     gg.NewContext(width, height),
		source: source,
	}, nil
}

// Size implements Surface.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear implements Surface.
func (c *Canvas) Clear(col Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// DrawLine implements Surface. gg always antialiases strokes.
func (c *Canvas) DrawLine(a, b math3d.Vec2, s Stroke) {
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = fmt.Errorf("stroke: %w", err)
	}
}

// DrawText implements Surface.
func (c *Canvas) DrawText(s string, at math3d.Vec2, style TextStyle) {
	if c.face == nil || c.faceSize != style.Size {
		c.face = c.source.Face(style.Size)
		c.faceSize = style.Size
		c.dc.SetFont(c.face)
	}
	c.dc.SetColor(style.Color)
	c.dc.DrawString(s, at.X, at.Y)
}

// Err returns the first drawing error since creation.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to path, reporting any earlier drawing error.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.SavePNG(path)
}

// Close releases the drawing context and font.
func (c *Canvas) Close() error {
	return errors.Join(c.dc.Close(), c.source.Close())
}
