package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerminal implements Terminal over a tcell.Screen
type tcellTerminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	inited bool
}

// New creates a tcell-backed terminal
func New() Terminal {
	return &tcellTerminal{}
}

// Init allocates and initializes the underlying screen
func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inited {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	t.screen = screen
	t.inited = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		return
	}
	t.screen.Fini()
	t.inited = false
}

// Size returns current terminal dimensions
func (t *tcellTerminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		return 0, 0
	}
	return t.screen.Size()
}

// Flush writes a row-major cell buffer to the terminal
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		return
	}

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			cell := cells[row+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, styleFromCell(cell))
		}
	}
	t.screen.Show()
}

// Clear fills the screen with the specified background color
func (t *tcellTerminal) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inited {
		return
	}
	style := tcell.StyleDefault.Background(toTcellColor(bg))
	t.screen.Fill(' ', style)
	t.screen.Show()
}

// PollEvent blocks until the next event and maps it to the terminal event model
func (t *tcellTerminal) PollEvent() Event {
	t.mu.Lock()
	screen := t.screen
	inited := t.inited
	t.mu.Unlock()

	if !inited {
		return Event{Type: EventClosed}
	}

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyEscape:
				return Event{Type: EventKey, Key: KeyEscape}
			case tcell.KeyEnter:
				return Event{Type: EventKey, Key: KeyEnter}
			case tcell.KeyCtrlC:
				return Event{Type: EventKey, Key: KeyCtrlC}
			case tcell.KeyRune:
				return Event{Type: EventKey, Key: KeyRune, Rune: tev.Rune()}
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case nil:
			return Event{Type: EventClosed}
		}
	}
}

// styleFromCell converts a Cell to a tcell style
func styleFromCell(cell Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(cell.Fg)).
		Background(toTcellColor(cell.Bg))

	if cell.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if cell.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if cell.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if cell.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if cell.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	if cell.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// toTcellColor converts RGB to a tcell color
// tcell downsamples to the terminal's palette when truecolor is unavailable
func toTcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
