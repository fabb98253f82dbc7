package render

import (
	"time"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// FrameTime is the wall-clock time of the current frame
	FrameTime time.Time

	// DeltaTime is seconds elapsed since the previous frame
	DeltaTime float64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewContext creates a frame context for the current frame
func NewContext(screenWidth, screenHeight int, deltaTime float64) Context {
	return Context{
		FrameTime:    time.Now(),
		DeltaTime:    deltaTime,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}
