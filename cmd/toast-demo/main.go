package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/toast"
	"github.com/lixenwraith/toast/chime"
	"github.com/lixenwraith/toast/config"
	"github.com/lixenwraith/toast/font"
	"github.com/lixenwraith/toast/render"
	"github.com/lixenwraith/toast/terminal"
)

// Colors
var (
	backdropColor = terminal.RGB{R: 26, G: 27, B: 38}
	helpColor     = terminal.RGB{R: 140, G: 150, B: 170}
)

var messages = []string{
	"File saved",
	"Connection lost, retrying in 5 seconds",
	"Achievement unlocked: first steps into the unknown dungeon depths",
	"3 new items",
	"Autosave complete",
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	withChime := flag.Bool("chime", false, "play a chime when a toast appears")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer term.Fini()

	var player *chime.Player
	if *withChime || cfg.Chime.Enabled {
		player = chime.NewPlayer()
		if err := player.Initialize(); err != nil {
			player = nil // Silent mode, not an error
		} else {
			player.SetVolume(cfg.Chime.Volume)
			defer player.Cleanup()
		}
	}

	cellFactory, err := buildFactory(cfg, font.NewCellFace(), term, player)
	if err != nil {
		term.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	blockFactory, err := buildFactory(cfg, font.NewBlockFace(), term, player)
	if err != nil {
		term.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Dedicated input goroutine
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	width, height := term.Size()
	buf := render.NewBuffer(width, height)
	buf.SetDefaultBackground(backdropColor)

	// FIFO display queue, one toast shown at a time
	var queue []*toast.Toast
	nextMsg := 0

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		// Handle all pending events
	eventLoop:
		for {
			select {
			case ev := <-eventCh:
				switch ev.Type {
				case terminal.EventKey:
					switch {
					case ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyEscape,
						ev.Key == terminal.KeyRune && ev.Rune == 'q':
						return
					case ev.Key == terminal.KeyRune && ev.Rune == 's':
						queue = append(queue, cellFactory.Create(messages[nextMsg%len(messages)], toast.LengthShort))
						nextMsg++
					case ev.Key == terminal.KeyRune && ev.Rune == 'l':
						queue = append(queue, cellFactory.Create(messages[nextMsg%len(messages)], toast.LengthLong))
						nextMsg++
					case ev.Key == terminal.KeyRune && ev.Rune == 'b':
						queue = append(queue, blockFactory.Create(messages[nextMsg%len(messages)], toast.LengthShort))
						nextMsg++
					}
				case terminal.EventResize:
					width, height = ev.Width, ev.Height
					buf.Resize(width, height)
				case terminal.EventClosed:
					return
				}
			default:
				break eventLoop
			}
		}

		<-ticker.C
		now := time.Now()
		delta := now.Sub(lastFrame).Seconds()
		lastFrame = now

		buf.Clear()
		drawHelp(buf, len(queue))

		if len(queue) > 0 {
			ctx := render.NewContext(width, height, delta)
			if !queue[0].Render(ctx, buf) {
				queue = queue[1:]
			}
		}

		buf.Flush(term)
	}
}

// buildFactory applies the shared config to a builder for the given face
func buildFactory(cfg config.Config, face font.Face, viewport toast.Viewport, player *chime.Player) (*toast.Factory, error) {
	builder := toast.NewBuilder().
		Font(face).
		Viewport(viewport)
	if err := cfg.Apply(builder); err != nil {
		return nil, err
	}
	if player != nil {
		builder.Chime(player)
	}
	return builder.Build()
}

// drawHelp writes the key legend on the top row
func drawHelp(buf *render.Buffer, queued int) {
	help := fmt.Sprintf("s: short toast  l: long toast  b: block toast  q: quit  [queued: %d]", queued)
	x := 1
	for _, r := range help {
		buf.SetFgOnly(x, 0, r, helpColor, terminal.AttrNone)
		x++
	}
}
