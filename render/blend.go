package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x04
)

// Blend flags
const (
	flagBg uint8 = 0x10 // Apply operation to background
	flagFg uint8 = 0x20 // Apply operation to foreground
)

// Pre-defined blend modes
const (
	// Standard modes (affect both Fg and Bg)
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	// Targeted modes
	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace Fg, keep Bg
	BlendAlphaFg = BlendMode(opAlpha | flagFg)   // Alpha blend Fg, keep Bg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Alpha blend Bg, keep Fg
	BlendMaxBg   = BlendMode(opMax | flagBg)     // Max blend Bg, keep Fg
)
