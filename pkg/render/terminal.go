package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/spincube/pkg/math3d"
)

// CellSetter is the part of a terminal screen the renderer writes to.
type CellSetter interface {
	SetCell(x, y int, c *uv.Cell)
}

// TerminalScreen is a cell screen that can present its buffer.
// *uv.Terminal satisfies it.
type TerminalScreen interface {
	CellSetter
	Display() error
}

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr CellSetter, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer is a Surface on a terminal. Lines go to a half-block
// framebuffer of cols x 2*rows pixels; text is laid over the cells.
type TerminalRenderer struct {
	scr        TerminalScreen
	cols, rows int
	fb         *Framebuffer
	background Color
	texts      []textRun
}

type textRun struct {
	col, row int
	text     string
	color    Color
}

// NewTerminalRenderer creates a renderer for a cols x rows terminal.
func NewTerminalRenderer(scr TerminalScreen, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{
		scr:  scr,
		cols: cols,
		rows: rows,
		fb:   NewFramebuffer(cols, rows*2),
	}
}

// Size implements Surface in framebuffer pixels.
func (t *TerminalRenderer) Size() (width, height int) {
	return t.fb.Size()
}

// Clear implements Surface and drops queued text.
func (t *TerminalRenderer) Clear(c Color) {
	t.fb.Clear(c)
	t.background = c
	t.texts = t.texts[:0]
}

// DrawLine implements Surface.
func (t *TerminalRenderer) DrawLine(a, b math3d.Vec2, s Stroke) {
	// Cells are one pixel wide; wider brushes smear the model.
	s.Width = 1
	t.fb.DrawLine(a, b, s)
}

// DrawText implements Surface. at is in pixels and is snapped to the cell
// holding the baseline.
func (t *TerminalRenderer) DrawText(s string, at math3d.Vec2, style TextStyle) {
	t.texts = append(t.texts, textRun{
		col:   int(at.X),
		row:   int(at.Y) / 2,
		text:  s,
		color: style.Color,
	})
}

// Render writes the framebuffer and the queued text to the screen.
func (t *TerminalRenderer) Render() {
	t.fb.Draw(t.scr, uv.Rect(0, 0, t.cols, t.rows))

	for _, run := range t.texts {
		if run.row < 0 || run.row >= t.rows {
			continue
		}
		col := run.col
		for _, r := range run.text {
			if col >= t.cols {
				break
			}
			if col >= 0 {
				t.scr.SetCell(col, run.row, &uv.Cell{
					Content: string(r),
					Width:   1,
					Style: uv.Style{
						Fg: run.color,
						Bg: rgbaToColor(t.background),
					},
				})
			}
			col++
		}
	}
}

// Flush presents the rendered cells.
func (t *TerminalRenderer) Flush() error {
	return t.scr.Display()
}
