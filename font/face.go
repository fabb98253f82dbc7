// Package font provides text measurement and drawing faces for toast
// rendering. A Face measures text in cell units and draws single lines
// through the render compositor, so callers can lay out text before
// committing any draw calls.
package font

import (
	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

// Metrics describes a measured block of text in cells
type Metrics struct {
	Width      int
	Height     int
	LineHeight int
	Lines      []string
}

// Face is a text rendering resource
type Face interface {
	// LineHeight returns the height of one text line in cells
	LineHeight() int

	// LineWidth returns the width of a single line in cells
	LineWidth(line string) int

	// Measure lays out text without a width constraint
	// Explicit newlines break lines; empty text measures zero
	Measure(text string) Metrics

	// MeasureWrapped lays out text word-wrapped to maxWidth cells
	MeasureWrapped(text string, maxWidth int) Metrics

	// DrawLine draws one line at x,y alpha-blended into the buffer
	DrawLine(buf *render.Buffer, line string, x, y int, color terminal.RGB, alpha float64)
}

// maxLineWidth returns the widest line per the face's width function
func maxLineWidth(lines []string, widthOf func(string) int) int {
	width := 0
	for _, line := range lines {
		if w := widthOf(line); w > width {
			width = w
		}
	}
	return width
}
