package render

import "testing"

func TestBlend(t *testing.T) {
	c := RGB{R: 0, G: 100, B: 200}
	src := RGB{R: 100, G: 200, B: 100}

	if got := Blend(c, src, 1.0); !got.Equal(src) {
		t.Errorf("Expected full alpha to return src, got %v", got)
	}
	if got := Blend(c, src, 0.0); !got.Equal(c) {
		t.Errorf("Expected zero alpha to return dst, got %v", got)
	}

	got := Blend(c, src, 0.5)
	want := RGB{R: 50, G: 150, B: 150}
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAdd(t *testing.T) {
	c := RGB{R: 200, G: 10, B: 0}
	src := RGB{R: 100, G: 20, B: 5}

	got := Add(c, src, 1.0)
	want := RGB{R: 255, G: 30, B: 5}
	if !got.Equal(want) {
		t.Errorf("Expected clamped addition %v, got %v", want, got)
	}
	if got := Add(c, src, 0.0); !got.Equal(c) {
		t.Errorf("Expected zero alpha to return dst, got %v", got)
	}
}

func TestMax(t *testing.T) {
	c := RGB{R: 200, G: 10, B: 100}
	src := RGB{R: 100, G: 20, B: 100}

	got := Max(c, src, 1.0)
	want := RGB{R: 200, G: 20, B: 100}
	if !got.Equal(want) {
		t.Errorf("Expected per-channel max %v, got %v", want, got)
	}
}

func TestScreen(t *testing.T) {
	// Screen with black is identity, with white saturates
	c := RGB{R: 100, G: 100, B: 100}

	if got := Screen(c, RGB{}, 1.0); !got.Equal(c) {
		t.Errorf("Expected screen with black to be identity, got %v", got)
	}
	got := Screen(c, RGB{R: 255, G: 255, B: 255}, 1.0)
	want := RGB{R: 255, G: 255, B: 255}
	if !got.Equal(want) {
		t.Errorf("Expected screen with white to saturate, got %v", got)
	}
}
