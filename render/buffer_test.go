package render

import (
	"testing"

	"github.com/lixenwraith/toast/terminal"
)

// captureTerminal records the last flushed cells
type captureTerminal struct {
	cells  []terminal.Cell
	width  int
	height int
}

func (c *captureTerminal) Init() error                    { return nil }
func (c *captureTerminal) Fini()                          {}
func (c *captureTerminal) Size() (int, int)               { return c.width, c.height }
func (c *captureTerminal) Clear(terminal.RGB)             {}
func (c *captureTerminal) PollEvent() terminal.Event      { return terminal.Event{} }
func (c *captureTerminal) Flush(cells []terminal.Cell, width, height int) {
	c.cells = append(c.cells[:0], cells...)
	c.width = width
	c.height = height
}

func TestNewBuffer(t *testing.T) {
	width, height := 80, 24
	buf := NewBuffer(width, height)

	if buf.Width() != width {
		t.Errorf("Expected width %d, got %d", width, buf.Width())
	}
	if buf.Height() != height {
		t.Errorf("Expected height %d, got %d", height, buf.Height())
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, ok := buf.CellAt(x, y)
			if !ok {
				t.Fatalf("Expected cell at (%d, %d) to exist", x, y)
			}
			if cell.Rune != 0 {
				t.Errorf("Expected cell at (%d, %d) to be empty, got %v", x, y, cell.Rune)
			}
		}
	}
}

func TestCellAtBounds(t *testing.T) {
	buf := NewBuffer(10, 10)

	if _, ok := buf.CellAt(-1, 5); ok {
		t.Error("Expected CellAt to fail for negative x")
	}
	if _, ok := buf.CellAt(5, 100); ok {
		t.Error("Expected CellAt to fail for y out of bounds")
	}
}

func TestSetWithBg(t *testing.T) {
	buf := NewBuffer(10, 10)
	fg := RGB{R: 255, G: 255, B: 255}
	bg := RGB{R: 55, G: 55, B: 55}

	buf.SetWithBg(3, 4, 'X', fg, bg)

	cell, _ := buf.CellAt(3, 4)
	if cell.Rune != 'X' || !cell.Fg.Equal(fg) || !cell.Bg.Equal(bg) {
		t.Errorf("Expected 'X' %v/%v, got %v %v/%v", fg, bg, cell.Rune, cell.Fg, cell.Bg)
	}

	// Out of bounds writes are dropped
	buf.SetWithBg(-1, 4, 'X', fg, bg)
	buf.SetWithBg(3, 40, 'X', fg, bg)
}

func TestSetAlphaBlendsForeground(t *testing.T) {
	buf := NewBuffer(10, 10)
	base := RGB{R: 40, G: 40, B: 40}
	buf.SetWithBg(2, 2, ' ', base, base)

	text := RGB{R: 240, G: 240, B: 240}
	buf.Set(2, 2, 'a', text, RGB{}, BlendAlphaFg, 0.5, terminal.AttrNone)

	cell, _ := buf.CellAt(2, 2)
	want := Blend(base, text, 0.5)
	if !cell.Fg.Equal(want) {
		t.Errorf("Expected fg %v, got %v", want, cell.Fg)
	}
	if !cell.Bg.Equal(base) {
		t.Errorf("Expected bg untouched, got %v", cell.Bg)
	}
	if cell.Rune != 'a' {
		t.Errorf("Expected rune 'a', got %v", cell.Rune)
	}
}

func TestSetAlphaBlendsBackground(t *testing.T) {
	buf := NewBuffer(10, 10)
	buf.SetBgOnly(1, 1, RGB{R: 100, G: 0, B: 0})

	buf.Set(1, 1, 0, RGB{}, RGB{R: 0, G: 0, B: 100}, BlendAlphaBg, 0.5, terminal.AttrNone)

	cell, _ := buf.CellAt(1, 1)
	want := Blend(RGB{R: 100, G: 0, B: 0}, RGB{R: 0, G: 0, B: 100}, 0.5)
	if !cell.Bg.Equal(want) {
		t.Errorf("Expected bg %v, got %v", want, cell.Bg)
	}
}

func TestFlushAppliesDefaultBackground(t *testing.T) {
	buf := NewBuffer(4, 2)
	defaultBg := RGB{R: 26, G: 27, B: 38}
	buf.SetDefaultBackground(defaultBg)

	touched := RGB{R: 55, G: 55, B: 55}
	buf.SetBgOnly(0, 0, touched)

	term := &captureTerminal{}
	buf.Flush(term)

	if term.width != 4 || term.height != 2 {
		t.Fatalf("Expected 4x2 flush, got %dx%d", term.width, term.height)
	}
	if !term.cells[0].Bg.Equal(touched) {
		t.Errorf("Expected touched cell to keep its bg, got %v", term.cells[0].Bg)
	}
	if !term.cells[1].Bg.Equal(defaultBg) {
		t.Errorf("Expected untouched cell to get default bg, got %v", term.cells[1].Bg)
	}
}

func TestResizeAndClear(t *testing.T) {
	buf := NewBuffer(8, 8)
	buf.SetWithBg(1, 1, 'X', RGB{}, RGB{R: 1, G: 2, B: 3})

	buf.Resize(4, 4)
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Errorf("Expected 4x4, got %dx%d", buf.Width(), buf.Height())
	}
	cell, _ := buf.CellAt(1, 1)
	if cell.Rune != 0 {
		t.Errorf("Expected resize to clear contents, got %v", cell.Rune)
	}

	buf.SetWithBg(2, 2, 'Y', RGB{}, RGB{R: 1, G: 2, B: 3})
	buf.Clear()
	cell, _ = buf.CellAt(2, 2)
	if cell.Rune != 0 {
		t.Errorf("Expected clear to reset contents, got %v", cell.Rune)
	}
}
