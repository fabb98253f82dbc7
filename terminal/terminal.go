package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access for frame-driven rendering
type Terminal interface {
	// Init enters alternate screen buffer and hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// PollEvent blocks until next input event
	PollEvent() Event
}

// EventType identifies terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
)

// Key identifies non-rune keys
type Key uint8

const (
	KeyRune Key = iota
	KeyEscape
	KeyEnter
	KeyCtrlC
)

// Event is a terminal input or lifecycle event
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// New dimensions for EventResize
	Width  int
	Height int
}
