package colour

import "testing"

func TestRGBChannels(t *testing.T) {
	c := NewRGB(255, 0, 127)

	r, g, b := c.RGB()
	if r != 255 || g != 0 || b != 127 {
		t.Errorf("expected (255, 0, 127), got (%d, %d, %d)", r, g, b)
	}

	_, _, _, a := c.RGBA()
	if a != 255 {
		t.Errorf("expected an opaque alpha channel, got %d", a)
	}
}

func TestRGBAddClamps(t *testing.T) {
	bright := NewRGB(200, 200, 200)

	r, g, b := bright.Add(bright).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected the sum to clamp to white, got (%d, %d, %d)", r, g, b)
	}
}

func TestRGBScaleClamps(t *testing.T) {
	c := NewRGB(100, 100, 100)

	if got := c.Scale(100.0); got != NewRGB(255, 255, 255) {
		t.Errorf("expected scaling up to clamp to white, got %v", got)
	}
	if got := c.Scale(-1.0); got != (RGB{}) {
		t.Errorf("expected scaling negatively to clamp to black, got %v", got)
	}
}

func TestRGBMultiply(t *testing.T) {
	white := NewRGB(255, 255, 255)
	c := NewRGB(10, 90, 200)

	if got := white.Multiply(c); got != c {
		t.Errorf("expected multiplying by white to be the identity, got %v", got)
	}
	if got := (RGB{}).Multiply(c); got != (RGB{}) {
		t.Errorf("expected multiplying by black to be black, got %v", got)
	}
}

func TestNewRGBFromFloatsClamps(t *testing.T) {
	if got := NewRGBFromFloats(2.0, -1.0, 0.5); got != NewRGBFromFloats(1.0, 0.0, 0.5) {
		t.Errorf("expected out-of-range channels to clamp, got %v", got)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name string
		cols []RGB
		expected RGB
	}{
		{"empty", nil, RGB{}},
		{"single colour", []RGB{NewRGB(10, 20, 30)}, NewRGB(10, 20, 30)},
		{"black and white", []RGB{NewRGB(255, 255, 255), RGB{}}, RGB{r: 0.5, g: 0.5, b: 0.5}},
		{"half covered pixel", []RGB{NewRGB(255, 255, 255), NewRGB(255, 255, 255), RGB{}, RGB{}}, RGB{r: 0.5, g: 0.5, b: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.cols); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
