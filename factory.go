package toast

import (
	"github.com/lixenwraith/toast/font"
	"github.com/lixenwraith/toast/terminal"
)

// Viewport supplies current screen dimensions
type Viewport interface {
	Size() (width, height int)
}

// ChimePlayer plays a notification sound when a toast is created
type ChimePlayer interface {
	Play()
}

// Factory creates toasts from shared display configuration
// Immutable once built; safe to reuse across screen resizes
type Factory struct {
	face             font.Face
	backgroundColor  terminal.RGB
	fontColor        terminal.RGB
	positionY        int
	fadingDuration   float64
	maxRelativeWidth float64
	customMargin     int
	hasCustomMargin  bool
	viewport         Viewport
	chime            ChimePlayer
}

// Create builds a new toast from the factory configuration
// The viewport width is read at creation time, so a reused factory follows
// resizes; already-created toasts keep their geometry
func (f *Factory) Create(text string, length Length) *Toast {
	viewportWidth, _ := f.viewport.Size()
	t := newToast(text, length, f, viewportWidth)
	if f.chime != nil {
		f.chime.Play()
	}
	return t
}
