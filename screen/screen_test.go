package screen

import (
	"testing"

	"github.com/tvanier/glint/colour"
)

func TestFrameDimensions(t *testing.T) {
	frame := NewFrame(320, 240)

	if frame.Width() != 320 || frame.Height() != 240 {
		t.Errorf("expected 320 by 240, got %d by %d", frame.Width(), frame.Height())
	}

	bounds := frame.Image().Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("expected the backing image to be 320 by 240, got %v", bounds)
	}
}

func TestFrameSet(t *testing.T) {
	frame := NewFrame(4, 4)
	frame.Set(1, 2, colour.NewRGB(10, 20, 30))

	got := frame.Image().NRGBAAt(1, 2)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("expected (10, 20, 30), got (%d, %d, %d)", got.R, got.G, got.B)
	}
	if got.A != 0xFF {
		t.Errorf("expected an opaque pixel, got alpha %d", got.A)
	}
}
