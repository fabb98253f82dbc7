package render

import (
	"github.com/lixenwraith/toast/terminal"
)

// Buffer is a compositor backed by terminal.Cell array with dirty tracking
// Uses []terminal.Cell directly to allow zero-copy export, worth the coupling
type Buffer struct {
	cells     []terminal.Cell
	touched   []bool
	width     int
	height    int
	defaultBg RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	size := width * height
	cells := make([]terminal.Cell, size)
	touched := make([]bool, size)
	b := &Buffer{
		cells:     cells,
		touched:   touched,
		width:     width,
		height:    height,
		defaultBg: RGBBlack,
	}
	b.Clear()
	return b
}

// SetDefaultBackground sets the color applied to untouched cells at flush
func (b *Buffer) SetDefaultBackground(bg RGB) {
	b.defaultBg = bg
}

// Width returns buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	// Initialize first cell
	b.cells[0] = terminal.Cell{
		Rune:  0,
		Fg:    b.defaultBg,
		Bg:    RGBBlack,
		Attrs: terminal.AttrNone,
	}
	b.touched[0] = false
	// Exponential copy for cells
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	// Exponential copy for touched
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns the cell at the given position
func (b *Buffer) CellAt(x, y int) (terminal.Cell, bool) {
	if !b.inBounds(x, y) {
		return terminal.Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode
func (b *Buffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	// 1. Update Rune/Attrs if provided
	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}

	// 2. Background processing
	if flags&flagBg != 0 {
		switch op {
		case opReplace:
			dst.Bg = bg
		case opAlpha:
			dst.Bg = Blend(dst.Bg, bg, alpha)
		case opAdd:
			dst.Bg = Add(dst.Bg, bg, alpha)
		case opMax:
			dst.Bg = Max(dst.Bg, bg, alpha)
		case opScreen:
			dst.Bg = Screen(dst.Bg, bg, alpha)
		}
		// Always mark touched if we touched background
		b.touched[idx] = true
	}

	// 3. Foreground processing
	if flags&flagFg != 0 {
		switch op {
		case opReplace:
			dst.Fg = fg
		case opAlpha:
			dst.Fg = Blend(dst.Fg, fg, alpha)
		case opAdd:
			dst.Fg = Add(dst.Fg, fg, alpha)
		case opMax:
			dst.Fg = Max(dst.Fg, fg, alpha)
		case opScreen:
			dst.Fg = Screen(dst.Fg, fg, alpha)
		}
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
// Unwrapped for performance: bypass BlendMode decoding for high-frequency text rendering
// Does NOT mark cell as touched, allowing underlying background to persist or default in finalize()
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground
// Marks cell as touched to prevent default background override
func (b *Buffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x

	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = terminal.AttrNone
	b.touched[idx] = true
}

// ===== OUTPUT =====

// finalize sets default background to untouched cells before flush
func (b *Buffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = b.defaultBg
		}
	}
}

// Flush writes the buffer to the terminal
func (b *Buffer) Flush(term terminal.Terminal) {
	b.finalize()
	term.Flush(b.cells, b.width, b.height)
}
