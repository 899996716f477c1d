package render

import (
	"github.com/taigrr/spincube/pkg/models"
)

// Wireframe draws the edge set of a model through a Projector.
type Wireframe struct {
	Projector *Projector
	Stroke    Stroke
}

// FrameStats summarizes one wireframe draw.
type FrameStats struct {
	Segments int // segments handed to the surface
	Skipped  int // segments dropped for a non-finite endpoint
}

// NewWireframe creates a wireframe drawer.
func NewWireframe(projector *Projector, stroke Stroke) *Wireframe {
	return &Wireframe{
		Projector: projector,
		Stroke:    stroke,
	}
}

// Draw projects the model for angle onto s and strokes one segment per
// edge. Edges touching a vertex that projects to infinity or NaN (depth 0
// after the transform) are skipped.
func (w *Wireframe) Draw(s Surface, m *models.Model, angle float64) FrameStats {
	width, height := s.Size()
	points := w.Projector.Project(m.Vertices(), angle, width, height)

	var stats FrameStats
	for _, e := range m.Edges() {
		a, b := points[e.A], points[e.B]
		if !a.IsFinite() || !b.IsFinite() {
			stats.Skipped++
			continue
		}
		s.DrawLine(a, b, w.Stroke)
		stats.Segments++
	}
	return stats
}
