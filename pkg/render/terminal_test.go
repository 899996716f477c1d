package render

import (
	"errors"
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/spincube/pkg/math3d"
)

type fakeScreen struct {
	cells    map[[2]int]uv.Cell
	displays int
	err      error
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]uv.Cell)}
}

func (f *fakeScreen) SetCell(x, y int, c *uv.Cell) {
	f.cells[[2]int{x, y}] = *c
}

func (f *fakeScreen) Display() error {
	f.displays++
	return f.err
}

func TestFramebufferDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.SetPixel(0, 0, ColorGreen)
	fb.SetPixel(0, 1, ColorWhite)

	scr := newFakeScreen()
	fb.Draw(scr, uv.Rect(0, 0, 2, 2))

	if len(scr.cells) != 4 {
		t.Fatalf("set %d cells, want 4", len(scr.cells))
	}
	c := scr.cells[[2]int{0, 0}]
	if c.Content != "▀" {
		t.Errorf("content = %q, want upper half block", c.Content)
	}
	if c.Style.Fg != color.Color(ColorGreen) || c.Style.Bg != color.Color(ColorWhite) {
		t.Errorf("style = %+v, want green over white", c.Style)
	}
	if empty := scr.cells[[2]int{1, 1}]; empty.Style.Fg != nil || empty.Style.Bg != nil {
		t.Errorf("transparent pixels should leave colors unset, got %+v", empty.Style)
	}
}

func TestTerminalRendererSize(t *testing.T) {
	r := NewTerminalRenderer(newFakeScreen(), 80, 24)
	w, h := r.Size()
	if w != 80 || h != 48 {
		t.Errorf("Size() = %d x %d, want 80 x 48", w, h)
	}
}

func TestTerminalRendererText(t *testing.T) {
	scr := newFakeScreen()
	r := NewTerminalRenderer(scr, 20, 5)
	r.Clear(ColorBlack)
	r.DrawLine(math3d.V2(0, 0), math3d.V2(19, 0), Stroke{Color: ColorGreen, Width: 4})
	r.DrawText("60 FPS", math3d.V2(2, 4), TextStyle{Color: ColorYellow})
	r.Render()

	want := "60 FPS"
	for i, ch := range want {
		c := scr.cells[[2]int{2 + i, 2}]
		if c.Content != string(ch) {
			t.Errorf("cell (%d, 2) = %q, want %q", 2+i, c.Content, string(ch))
		}
		if c.Style.Fg != color.Color(ColorYellow) {
			t.Errorf("cell (%d, 2) fg = %v, want yellow", 2+i, c.Style.Fg)
		}
	}

	// A wide stroke still covers a single pixel row.
	if got := scr.cells[[2]int{5, 0}]; got.Style.Fg != color.Color(ColorGreen) || got.Style.Bg != color.Color(ColorBlack) {
		t.Errorf("line cell style = %+v, want green over black", got.Style)
	}
}

func TestTerminalRendererTextClipped(t *testing.T) {
	scr := newFakeScreen()
	r := NewTerminalRenderer(scr, 4, 2)
	r.Clear(ColorBlack)
	r.DrawText("toolong", math3d.V2(1, 0), TextStyle{Color: ColorWhite})
	r.DrawText("hidden", math3d.V2(0, 40), TextStyle{Color: ColorWhite})
	r.Render()

	for key := range scr.cells {
		if key[0] < 0 || key[0] >= 4 || key[1] < 0 || key[1] >= 2 {
			t.Errorf("cell %v written outside the screen", key)
		}
	}
	if got := scr.cells[[2]int{3, 0}].Content; got != "o" {
		t.Errorf("last visible cell = %q, want %q", got, "o")
	}
}

func TestTerminalRendererClearDropsText(t *testing.T) {
	scr := newFakeScreen()
	r := NewTerminalRenderer(scr, 10, 2)
	r.DrawText("stale", math3d.V2(0, 0), TextStyle{Color: ColorWhite})
	r.Clear(ColorBlack)
	r.Render()

	if got := scr.cells[[2]int{0, 0}].Content; got != "▀" {
		t.Errorf("cell (0,0) = %q after Clear, want half block", got)
	}
}

func TestTerminalRendererFlush(t *testing.T) {
	scr := newFakeScreen()
	r := NewTerminalRenderer(scr, 4, 2)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if scr.displays != 1 {
		t.Errorf("displays = %d, want 1", scr.displays)
	}

	scr.err = errors.New("closed")
	if err := r.Flush(); err == nil {
		t.Error("Flush swallowed the display error")
	}
}
