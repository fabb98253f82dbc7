// Package config loads toast display configuration from TOML files and
// applies it to a factory builder
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/toast"
	"github.com/lixenwraith/toast/terminal"
)

// Config is the full configuration file
type Config struct {
	Toast ToastConfig `toml:"toast"`
	Chime ChimeConfig `toml:"chime"`
}

// ToastConfig holds display knobs for created toasts
type ToastConfig struct {
	// Colors as "#RRGGBB" or "#RGB"
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`

	// Seconds of fade-out before expiry
	FadingDuration float64 `toml:"fading_duration"`

	// Fraction of viewport width beyond which text wraps
	MaxRelativeWidth float64 `toml:"max_relative_width"`

	// Bottom edge row; -1 selects the default position
	PositionY int `toml:"position_y"`

	// Text margin in cells; -1 derives it from the font line height
	Margin int `toml:"margin"`
}

// ChimeConfig controls the optional notification sound
type ChimeConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Toast: ToastConfig{
			Background:       "#373737",
			Foreground:       "#FFFFFF",
			FadingDuration:   0.5,
			MaxRelativeWidth: 0.65,
			PositionY:        -1,
			Margin:           -1,
		},
		Chime: ChimeConfig{
			Enabled: false,
			Volume:  0.8,
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config load: %w", err)
	}
	return cfg, nil
}

// Apply transfers the display configuration onto a factory builder
func (c Config) Apply(b *toast.Builder) error {
	background, err := ParseHexColor(c.Toast.Background)
	if err != nil {
		return fmt.Errorf("config background: %w", err)
	}
	foreground, err := ParseHexColor(c.Toast.Foreground)
	if err != nil {
		return fmt.Errorf("config foreground: %w", err)
	}

	b.BackgroundColor(background).
		FontColor(foreground).
		FadingDuration(c.Toast.FadingDuration).
		MaxTextRelativeWidth(c.Toast.MaxRelativeWidth)

	if c.Toast.PositionY >= 0 {
		b.PositionY(c.Toast.PositionY)
	}
	if c.Toast.Margin >= 0 {
		b.Margin(c.Toast.Margin)
	}
	return b.Err()
}

// ParseHexColor parses "#RRGGBB" or "#RGB" into an RGB color
func ParseHexColor(s string) (terminal.RGB, error) {
	if len(s) == 0 || s[0] != '#' {
		return terminal.RGB{}, fmt.Errorf("invalid color %q: must start with '#'", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 6:
		r, err1 := hexByte(hex[0], hex[1])
		g, err2 := hexByte(hex[2], hex[3])
		b, err3 := hexByte(hex[4], hex[5])
		if err1 != nil || err2 != nil || err3 != nil {
			return terminal.RGB{}, fmt.Errorf("invalid color %q", s)
		}
		return terminal.RGB{R: r, G: g, B: b}, nil
	case 3:
		r, err1 := hexByte(hex[0], hex[0])
		g, err2 := hexByte(hex[1], hex[1])
		b, err3 := hexByte(hex[2], hex[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return terminal.RGB{}, fmt.Errorf("invalid color %q", s)
		}
		return terminal.RGB{R: r, G: g, B: b}, nil
	default:
		return terminal.RGB{}, fmt.Errorf("invalid color %q: want #RGB or #RRGGBB", s)
	}
}

// hexByte decodes two hex digits into one byte
func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexDigit(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexDigit(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
