// Package render projects wireframe models and draws them on 2D surfaces.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/taigrr/spincube/pkg/math3d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Framebuffer is a 2D array of pixels. It implements Surface with integer
// line rasterization and draw.Image so standard image code can target it.
type Framebuffer struct {
	Width  int          // Width in pixels
	Height int          // Height in pixels
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Size implements Surface.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine implements Surface. The segment is clipped to the buffer, then
// rasterized with a square brush of the stroke width. Antialiasing is not
// supported and the flag is ignored.
func (fb *Framebuffer) DrawLine(a, b math3d.Vec2, s Stroke) {
	if fb.Width == 0 || fb.Height == 0 {
		return
	}
	a, b, ok := clipSegment(a, b, float64(fb.Width-1), float64(fb.Height-1))
	if !ok {
		return
	}

	brush := int(math.Round(s.Width))
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	if brush <= 1 {
		fb.PlotLine(x0, y0, x1, y1, s.Color)
		return
	}

	off := (brush - 1) / 2
	fb.plot(x0, y0, x1, y1, func(x, y int) {
		fb.DrawRect(x-off, y-off, brush, brush, s.Color)
	})
}

// PlotLine draws a one pixel line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm.
func (fb *Framebuffer) PlotLine(x0, y0, x1, y1 int, c color.RGBA) {
	fb.plot(x0, y0, x1, y1, func(x, y int) {
		fb.SetPixel(x, y, c)
	})
}

func (fb *Framebuffer) plot(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment clips a-b to the rectangle [0,maxX]x[0,maxY] (Liang-Barsky).
// It reports false when nothing of the segment is inside.
func clipSegment(a, b math3d.Vec2, maxX, maxY float64) (math3d.Vec2, math3d.Vec2, bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return a, b, false
	}

	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X},
		{d.X, maxX - a.X},
		{-d.Y, a.Y},
		{d.Y, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

// DrawText implements Surface using a 7x13 bitmap face; style.Size is
// ignored.
func (fb *Framebuffer) DrawText(text string, at math3d.Vec2, style TextStyle) {
	d := font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(style.Color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(at.X), int(at.Y)),
	}
	d.DrawString(text)
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.SetPixel(px, py, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.GetPixel(x, y)
}

// Set implements draw.Image.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	fb.SetPixel(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
