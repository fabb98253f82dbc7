package toast

import (
	"fmt"

	"github.com/lixenwraith/toast/font"
	"github.com/lixenwraith/toast/terminal"
)

// Default display configuration, matching the Android toast look
var (
	DefaultBackgroundColor = terminal.RGB{R: 55, G: 55, B: 55}
	DefaultFontColor       = terminal.RGB{R: 255, G: 255, B: 255}
)

const (
	defaultFadingDuration   = 0.5
	defaultMaxRelativeWidth = 0.65

	// Rows kept free below the default toast position
	defaultBottomGap = 2
)

// Builder assembles a Factory through fluent configuration.
// A builder produces exactly one factory: Build fails on a second call and
// setters panic once the factory has been produced.
type Builder struct {
	factory *Factory
	built   bool
	err     error
}

// NewBuilder creates a factory builder with default configuration
func NewBuilder() *Builder {
	return &Builder{
		factory: &Factory{
			backgroundColor:  DefaultBackgroundColor,
			fontColor:        DefaultFontColor,
			positionY:        -1,
			fadingDuration:   defaultFadingDuration,
			maxRelativeWidth: defaultMaxRelativeWidth,
		},
	}
}

// check guards against configuring a consumed builder
func (b *Builder) check() {
	if b.built {
		panic("toast: builder already consumed")
	}
}

// Font sets the text face for created toasts. Required
func (b *Builder) Font(face font.Face) *Builder {
	b.check()
	b.factory.face = face
	return b
}

// BackgroundColor sets the toast background color
// Default: rgb(55,55,55)
func (b *Builder) BackgroundColor(color terminal.RGB) *Builder {
	b.check()
	b.factory.backgroundColor = color
	return b
}

// FontColor sets the text color
// Default: white
func (b *Builder) FontColor(color terminal.RGB) *Builder {
	b.check()
	b.factory.fontColor = color
	return b
}

// PositionY sets the bottom edge row of created toasts
// Negative values select the default position, a short gap above the
// bottom tenth of the screen
func (b *Builder) PositionY(y int) *Builder {
	b.check()
	b.factory.positionY = y
	return b
}

// FadingDuration sets how many seconds the fade-out takes
// A negative duration is rejected immediately: the error is recorded,
// reported by Err, and fails the eventual Build
// Default: 0.5s
func (b *Builder) FadingDuration(seconds float64) *Builder {
	b.check()
	if seconds < 0 {
		if b.err == nil {
			b.err = fmt.Errorf("toast: fading duration must be non-negative, got %v", seconds)
		}
		return b
	}
	b.factory.fadingDuration = seconds
	return b
}

// MaxTextRelativeWidth sets the fraction of the viewport width beyond
// which toast text wraps (e.g. 0.5 = half the screen width)
// Default: 0.65
func (b *Builder) MaxTextRelativeWidth(fraction float64) *Builder {
	b.check()
	b.factory.maxRelativeWidth = fraction
	return b
}

// Margin overrides the font-derived text margin, in cells
// Default: twice the face line height
func (b *Builder) Margin(cells int) *Builder {
	b.check()
	b.factory.customMargin = cells
	b.factory.hasCustomMargin = true
	return b
}

// Viewport sets the screen dimension query for created toasts. Required
func (b *Builder) Viewport(viewport Viewport) *Builder {
	b.check()
	b.factory.viewport = viewport
	return b
}

// Chime sets an optional notification sound played on toast creation
func (b *Builder) Chime(player ChimePlayer) *Builder {
	b.check()
	b.factory.chime = player
	return b
}

// Err returns the first configuration error recorded so far
func (b *Builder) Err() error {
	return b.err
}

// Build produces the factory. A builder builds exactly once
func (b *Builder) Build() (*Factory, error) {
	if b.built {
		return nil, fmt.Errorf("toast: builder can be used only once")
	}
	if b.err != nil {
		return nil, b.err
	}
	if b.factory.face == nil {
		return nil, fmt.Errorf("toast: font is not set")
	}
	if b.factory.viewport == nil {
		return nil, fmt.Errorf("toast: viewport is not set")
	}
	if b.factory.positionY < 0 {
		_, screenHeight := b.factory.viewport.Size()
		b.factory.positionY = screenHeight - 1 - defaultBottomGap - (screenHeight-defaultBottomGap)/10
	}
	b.built = true
	return b.factory, nil
}
