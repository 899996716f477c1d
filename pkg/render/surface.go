package render

import "github.com/taigrr/spincube/pkg/math3d"

// Surface is a 2D drawing target sized in physical pixels.
type Surface interface {
	// Size returns the current physical size in pixels.
	Size() (width, height int)
	// Clear fills the whole surface with c.
	Clear(c Color)
	// DrawLine strokes a segment between two pixel positions.
	DrawLine(a, b math3d.Vec2, s Stroke)
	// DrawText draws text with its baseline starting at at.
	DrawText(text string, at math3d.Vec2, style TextStyle)
}

// Stroke describes how line segments are drawn.
type Stroke struct {
	Color     Color
	Width     float64
	Antialias bool
}

// TextStyle describes how text is drawn.
type TextStyle struct {
	Color Color
	Size  float64 // in points; bitmap surfaces may ignore it
}
