package chime

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected equal channels", i)
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDrains verifies the stream ends after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	osc := NewOscillator(440.0, duration, rate)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("Expected %d total samples, got %d", want, total)
	}
}

// TestEnvelopeRamps verifies attack starts silent and release ends silent
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 20 * time.Millisecond
	osc := NewOscillator(440.0, duration, rate)
	env := NewEnvelope(osc, duration, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n == 0 {
		t.Fatal("Expected enveloped samples")
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}

	// Find the last streamed sample and check the release ramp brought it down
	last := samples[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Expected release to end near silent, got %f", last)
	}
}

// TestChimeSound verifies the composed chime streams and drains
func TestChimeSound(t *testing.T) {
	chime := NewChimeSound(0.5, sampleRate)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := chime.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	// Two notes: 70ms + 110ms
	want := sampleRate.N(180 * time.Millisecond)
	if total != want {
		t.Errorf("Expected %d total samples, got %d", want, total)
	}
}

// TestPlayerUninitializedIsSilent verifies Play is a no-op before Initialize
func TestPlayerUninitializedIsSilent(t *testing.T) {
	p := NewPlayer()
	p.Play()
	p.Cleanup()
}
