package font

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

// CellFace renders text as ordinary terminal cells, one cell tall
// Widths are display widths, so wide runes count as two cells
type CellFace struct{}

// NewCellFace creates a cell text face
func NewCellFace() CellFace {
	return CellFace{}
}

// LineHeight returns the height of one text line in cells
func (CellFace) LineHeight() int {
	return 1
}

// LineWidth returns the display width of a single line
func (CellFace) LineWidth(line string) int {
	return runewidth.StringWidth(line)
}

// Measure lays out text without a width constraint
func (f CellFace) Measure(text string) Metrics {
	if text == "" {
		return Metrics{LineHeight: 1}
	}
	lines := strings.Split(text, "\n")
	return Metrics{
		Width:      maxLineWidth(lines, f.LineWidth),
		Height:     len(lines),
		LineHeight: 1,
		Lines:      lines,
	}
}

// MeasureWrapped lays out text word-wrapped to maxWidth cells
func (f CellFace) MeasureWrapped(text string, maxWidth int) Metrics {
	if text == "" {
		return Metrics{LineHeight: 1}
	}
	lines := wrapLines(text, maxWidth, f.LineWidth)
	return Metrics{
		Width:      maxLineWidth(lines, f.LineWidth),
		Height:     len(lines),
		LineHeight: 1,
		Lines:      lines,
	}
}

// DrawLine draws one line through the compositor's foreground alpha channel
func (CellFace) DrawLine(buf *render.Buffer, line string, x, y int, color terminal.RGB, alpha float64) {
	col := x
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.Set(col, y, r, color, render.RGB{}, render.BlendAlphaFg, alpha, terminal.AttrNone)
		col += w
	}
}
