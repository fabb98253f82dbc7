package toast

// Length selects a toast lifetime preset
type Length uint8

const (
	// LengthShort displays for 2 seconds
	LengthShort Length = iota
	// LengthLong displays for 3.5 seconds
	LengthLong
)

// Duration returns the preset lifetime in seconds
func (l Length) Duration() float64 {
	if l == LengthLong {
		return 3.5
	}
	return 2.0
}
