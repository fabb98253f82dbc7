package render

import (
	"github.com/lixenwraith/toast/terminal"
)

// RGB is an alias to terminal.RGB for colors, allowing render package to extend functionality
type RGB = terminal.RGB

// Predefined default color
var (
	RGBBlack = RGB{R: 0, G: 0, B: 0}
)

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	// Pre-calculate invariant
	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping and alpha blending
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	added := RGB{
		R: add(c.R, src.R),
		G: add(c.G, src.G),
		B: add(c.B, src.B),
	}

	if alpha >= 1.0 {
		return added
	}

	return Blend(c, added, alpha)
}

// Max returns per-channel maximum with alpha blending
func Max(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	maxed := RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}

	if alpha >= 1.0 {
		return maxed
	}

	return Blend(c, maxed, alpha)
}

// screenChannel applies the screen formula to one channel
func screenChannel(a, b uint8) uint8 {
	return uint8(255 - (255-int(a))*(255-int(b))/255)
}

// Screen performs screen blend with alpha blending
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	screened := RGB{
		R: screenChannel(c.R, src.R),
		G: screenChannel(c.G, src.G),
		B: screenChannel(c.B, src.B),
	}

	if alpha >= 1.0 {
		return screened
	}

	return Blend(c, screened, alpha)
}
