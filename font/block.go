package font

import (
	"strings"

	"github.com/lixenwraith/toast/asset"
	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

// BlockFace renders text as large block glyphs from the asset bitmap font
// Glyph pixels are drawn as background-colored cells
type BlockFace struct{}

// NewBlockFace creates a block glyph face
func NewBlockFace() BlockFace {
	return BlockFace{}
}

// LineHeight returns the glyph box height in cells
func (BlockFace) LineHeight() int {
	return asset.BlockGlyphHeight
}

// LineWidth returns the width of a single line in cells
func (BlockFace) LineWidth(line string) int {
	n := 0
	for range line {
		n++
	}
	return n * asset.BlockGlyphWidth
}

// Measure lays out text without a width constraint
func (f BlockFace) Measure(text string) Metrics {
	if text == "" {
		return Metrics{LineHeight: asset.BlockGlyphHeight}
	}
	lines := strings.Split(text, "\n")
	return Metrics{
		Width:      maxLineWidth(lines, f.LineWidth),
		Height:     len(lines) * asset.BlockGlyphHeight,
		LineHeight: asset.BlockGlyphHeight,
		Lines:      lines,
	}
}

// MeasureWrapped lays out text word-wrapped to maxWidth cells
func (f BlockFace) MeasureWrapped(text string, maxWidth int) Metrics {
	if text == "" {
		return Metrics{LineHeight: asset.BlockGlyphHeight}
	}
	lines := wrapLines(text, maxWidth, f.LineWidth)
	return Metrics{
		Width:      maxLineWidth(lines, f.LineWidth),
		Height:     len(lines) * asset.BlockGlyphHeight,
		LineHeight: asset.BlockGlyphHeight,
		Lines:      lines,
	}
}

// DrawLine draws glyph pixels through the compositor's background alpha channel
func (BlockFace) DrawLine(buf *render.Buffer, line string, x, y int, color terminal.RGB, alpha float64) {
	col := x
	for _, r := range line {
		bitmap := blockGlyph(r)
		for row := 0; row < asset.BlockGlyphHeight; row++ {
			rowBits := bitmap[row]
			if rowBits == 0 {
				continue
			}
			for gcol := 0; gcol < asset.BlockGlyphWidth; gcol++ {
				// MSB-first: bit 7 = column 0
				if rowBits&(1<<(7-gcol)) == 0 {
					continue
				}
				buf.Set(col+gcol, y+row, 0, render.RGB{}, color, render.BlendAlphaBg, alpha, terminal.AttrNone)
			}
		}
		col += asset.BlockGlyphWidth
	}
}

// blockGlyph returns the bitmap for a rune with fallback for missing glyphs
func blockGlyph(r rune) [6]uint8 {
	if r < 32 || r > 126 {
		return asset.BlockFontFallback
	}
	return asset.BlockFont[r-32]
}
