// Package chime plays a short notification sound when a toast appears.
// Playback runs through a shared beep mixer; an uninitialized player is a
// silent no-op, so audio stays optional
package chime

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player manages the speaker and mixes chime playback
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a chime player with full volume
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: 1.0,
	}
}

// Initialize sets up the audio system
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetVolume sets linear playback volume in [0,1]
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.volume = volume
}

// Play mixes in one notification chime. No-op before Initialize
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Add(NewChimeSound(p.volume, sampleRate))
}

// Cleanup stops playback and releases the mixer
// beep provides no speaker Close; clearing streamers avoids artifacts
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}
