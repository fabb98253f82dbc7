package font

import (
	"testing"

	"github.com/lixenwraith/toast/asset"
	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

func TestBlockFaceMetrics(t *testing.T) {
	face := NewBlockFace()

	if face.LineHeight() != asset.BlockGlyphHeight {
		t.Errorf("Expected line height %d, got %d", asset.BlockGlyphHeight, face.LineHeight())
	}
	if w := face.LineWidth("abc"); w != 3*asset.BlockGlyphWidth {
		t.Errorf("Expected width %d, got %d", 3*asset.BlockGlyphWidth, w)
	}

	m := face.Measure("hi")
	if m.Width != 2*asset.BlockGlyphWidth || m.Height != asset.BlockGlyphHeight {
		t.Errorf("Expected %dx%d, got %dx%d",
			2*asset.BlockGlyphWidth, asset.BlockGlyphHeight, m.Width, m.Height)
	}

	m = face.Measure("")
	if m.Width != 0 || m.Height != 0 {
		t.Errorf("Expected zero metrics for empty text, got %dx%d", m.Width, m.Height)
	}
}

func TestBlockFaceMeasureWrapped(t *testing.T) {
	// Each glyph is BlockGlyphWidth wide; 10 runes do not fit in 5 glyph widths
	face := NewBlockFace()
	m := face.MeasureWrapped("aaaa bbbb", 5*asset.BlockGlyphWidth)
	if len(m.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", m.Lines)
	}
	if m.Height != 2*asset.BlockGlyphHeight {
		t.Errorf("Expected height %d, got %d", 2*asset.BlockGlyphHeight, m.Height)
	}
}

func TestBlockFaceDrawLine(t *testing.T) {
	face := NewBlockFace()
	buf := render.NewBuffer(20, 10)
	color := terminal.RGB{R: 200, G: 200, B: 200}

	face.DrawLine(buf, "A", 0, 0, color, 1.0)

	// 'A' top row bitmap is 0x40: only column 1 set
	cell, _ := buf.CellAt(1, 0)
	if !cell.Bg.Equal(color) {
		t.Errorf("Expected glyph pixel at (1,0), got bg %v", cell.Bg)
	}
	cell, _ = buf.CellAt(0, 0)
	if cell.Bg.Equal(color) {
		t.Error("Expected no glyph pixel at (0,0)")
	}
}

func TestBlockFaceFallbackGlyph(t *testing.T) {
	if blockGlyph('A') != asset.BlockFont['A'-32] {
		t.Error("Expected ASCII rune to resolve to its bitmap")
	}
	if blockGlyph('λ') != asset.BlockFontFallback {
		t.Error("Expected non-ASCII rune to resolve to the fallback bitmap")
	}
}
