package render

import (
	"github.com/taigrr/spincube/pkg/math3d"
)

const (
	// DefaultRenderSize is the logical width and height the projected
	// [-1, 1] range is scaled to.
	DefaultRenderSize = 400
)

// DefaultOffset places the model 4 units in front of the eye.
var DefaultOffset = math3d.V3(0, 0, -4)

// Projector maps model vertices to surface pixels for one rotation angle:
// rotate about Pivot, move by Offset, perspective divide, then remap from
// the logical render size to the physical surface.
//
// A Projector is owned by a single render loop and is not safe for
// concurrent use.
type Projector struct {
	Pivot  math3d.Vec3 // rotation center, usually the model centroid
	Offset math3d.Vec3 // back-translation applied after rotation

	renderSize math3d.Vec2

	remap          math3d.Affine2
	remapW, remapH int
	remapValid     bool
	remaps         int

	points []math3d.Vec2
}

// NewProjector creates a projector rotating about pivot with the default
// offset and render size.
func NewProjector(pivot math3d.Vec3) *Projector {
	return &Projector{
		Pivot:      pivot,
		Offset:     DefaultOffset,
		renderSize: math3d.V2(DefaultRenderSize, DefaultRenderSize),
	}
}

// RenderSize returns the logical render size.
func (p *Projector) RenderSize() math3d.Vec2 {
	return p.renderSize
}

// SetRenderSize changes the logical render size and drops the cached remap.
func (p *Projector) SetRenderSize(size math3d.Vec2) {
	p.renderSize = size
	p.remapValid = false
}

// Transform returns the model transform for angle: a rotation about the Y
// axis through Pivot whose translation column is then replaced by Offset.
// The replacement discards the pivot residual, so the effective mapping is
// R*v + Offset.
func (p *Projector) Transform(angle float64) math3d.Mat4 {
	m := math3d.RotateYAround(angle, p.Pivot)
	m.SetTranslation(p.Offset)
	return m
}

// Project2D divides by depth onto the view plane. Points at z == 0 yield
// infinities or NaN.
func Project2D(v math3d.Vec3) math3d.Vec2 {
	return math3d.V2(v.X/-v.Z, v.Y/-v.Z)
}

// RemapMatrix scales projected coordinates by half the render size and
// moves the origin to the center of a width x height surface.
func RemapMatrix(renderSize math3d.Vec2, width, height int) math3d.Affine2 {
	normalize := math3d.ScaleUniform2(0.5)
	scaleToSize := math3d.Scale2(renderSize)
	center := math3d.Translate2(math3d.V2(float64(width)/2, float64(height)/2))
	return normalize.Mul(scaleToSize).Mul(center)
}

// Remap returns the remap transform for a surface size, recomputing it only
// when the size differs from the previous call.
func (p *Projector) Remap(width, height int) math3d.Affine2 {
	if !p.remapValid || width != p.remapW || height != p.remapH {
		p.remap = RemapMatrix(p.renderSize, width, height)
		p.remapW, p.remapH = width, height
		p.remapValid = true
		p.remaps++
	}
	return p.remap
}

// RemapCount reports how many times the remap transform was computed.
func (p *Projector) RemapCount() int {
	return p.remaps
}

// Project transforms every vertex for angle and returns one pixel position
// per vertex, in vertex order. The returned slice is reused by the next call.
func (p *Projector) Project(vertices []math3d.Vec3, angle float64, width, height int) []math3d.Vec2 {
	m := p.Transform(angle)
	remap := p.Remap(width, height)

	if cap(p.points) < len(vertices) {
		p.points = make([]math3d.Vec2, len(vertices))
	}
	p.points = p.points[:len(vertices)]

	for i, v := range vertices {
		p.points[i] = remap.Apply(Project2D(m.MulVec3(v)))
	}
	return p.points
}
