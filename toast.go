package toast

import (
	"github.com/lixenwraith/toast/font"
	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

// fadeCutoff suppresses text drawing at near-zero alpha to avoid flicker
const fadeCutoff = 0.15

// Toast is a transient notification overlay. Geometry is computed once at
// creation; the only mutable state is the remaining lifetime and the
// opacity derived from it
type Toast struct {
	msg  string
	face font.Face

	backgroundColor terminal.RGB
	fontColor       terminal.RGB
	fadingDuration  float64

	opacity    float64
	timeToLive float64

	// Background box: positionY is the bottom edge row, box extends upward
	toastWidth  int
	toastHeight int
	positionX   int
	positionY   int

	// Text block: textY is its top row; lines are centered within textWidth
	textX      int
	textY      int
	textWidth  int
	textHeight int
	lineHeight int
	lines      []string
}

// newToast measures text against the current viewport width and freezes
// the toast geometry
func newToast(text string, length Length, f *Factory, viewportWidth int) *Toast {
	m := f.face.Measure(text)
	lineHeight := f.face.LineHeight()

	margin := 2 * lineHeight
	if f.hasCustomMargin {
		margin = f.customMargin
	}

	textWidth, textHeight, lines := m.Width, m.Height, m.Lines

	// Re-measure word-wrapped only when the single-line width exceeds the
	// relative width threshold
	maxTextWidth := float64(viewportWidth) * f.maxRelativeWidth
	if float64(textWidth) > maxTextWidth {
		wrapped := f.face.MeasureWrapped(text, int(maxTextWidth))
		textWidth, textHeight, lines = wrapped.Width, wrapped.Height, wrapped.Lines
	}

	toastWidth := textWidth + 2*margin
	toastHeight := textHeight + 2*margin
	positionX := viewportWidth/2 - toastWidth/2

	return &Toast{
		msg:             text,
		face:            f.face,
		backgroundColor: f.backgroundColor,
		fontColor:       f.fontColor,
		fadingDuration:  f.fadingDuration,
		opacity:         1.0,
		timeToLive:      length.Duration(),
		toastWidth:      toastWidth,
		toastHeight:     toastHeight,
		positionX:       positionX,
		positionY:       f.positionY,
		textX:           positionX + margin,
		textY:           f.positionY - toastHeight + 1 + margin,
		textWidth:       textWidth,
		textHeight:      textHeight,
		lineHeight:      lineHeight,
		lines:           lines,
	}
}

// Message returns the display text captured at creation
func (t *Toast) Message() string {
	return t.msg
}

// Render advances the toast by the frame delta and draws it into the
// buffer. Must be called once per frame; returns false once expired, after
// which the caller should discard the toast. Further calls keep returning
// false without drawing
func (t *Toast) Render(ctx render.Context, buf *render.Buffer) bool {
	t.timeToLive -= ctx.DeltaTime

	if t.timeToLive < 0 {
		return false
	}

	t.drawBackground(buf)

	if t.timeToLive < t.fadingDuration {
		t.opacity = t.timeToLive / t.fadingDuration
	}
	if t.timeToLive > 0 && t.opacity > fadeCutoff {
		t.drawText(buf)
	}
	return true
}

// drawBackground fills the box and the two semicircular end caps that
// stretch it horizontally, caps centered on the box's vertical edges
func (t *Toast) drawBackground(buf *render.Buffer) {
	topY := t.positionY - t.toastHeight + 1

	for y := topY; y <= t.positionY; y++ {
		for x := t.positionX; x < t.positionX+t.toastWidth; x++ {
			buf.SetWithBg(x, y, ' ', t.backgroundColor, t.backgroundColor)
		}
	}

	radius := float64(t.toastHeight) / 2
	centerY := float64(topY) + radius
	t.drawCap(buf, float64(t.positionX), centerY, radius, topY)
	t.drawCap(buf, float64(t.positionX+t.toastWidth), centerY, radius, topY)
}

// drawCap fills cells whose centers fall inside a circle
func (t *Toast) drawCap(buf *render.Buffer, centerX, centerY, radius float64, topY int) {
	reach := int(radius) + 1
	for y := topY; y <= t.positionY; y++ {
		for x := int(centerX) - reach; x <= int(centerX)+reach; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			if dx*dx+dy*dy <= radius*radius {
				buf.SetWithBg(x, y, ' ', t.backgroundColor, t.backgroundColor)
			}
		}
	}
}

// drawText draws the laid-out lines centered within the text block,
// alpha-modulated by the current opacity
func (t *Toast) drawText(buf *render.Buffer) {
	y := t.textY
	for _, line := range t.lines {
		offset := (t.textWidth - t.face.LineWidth(line)) / 2
		t.face.DrawLine(buf, line, t.textX+offset, y, t.fontColor, t.opacity)
		y += t.lineHeight
	}
}
