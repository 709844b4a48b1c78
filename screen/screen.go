// Package screen provides the window and frame sinks the render driver draws into.
package screen

import (
	"fmt"
	"github.com/tvanier/glint/colour"
	"github.com/veandco/go-sdl2/sdl"
	"image"
	"image/color"
)

// These constants are timing values related to screen-updating.
const (
	FPS uint32 = 30
	MsPerFrame uint32 = 1000 / FPS
)

// Frame is an in-memory image sink for the render driver.
// Distinct pixels may be written concurrently.
type Frame struct {
	img *image.NRGBA
}

// NewFrame creates a new frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the frame f in pixels.
func (f *Frame) Width() int {
	return f.img.Rect.Dx()
}

// Height returns the height of the frame f in pixels.
func (f *Frame) Height() int {
	return f.img.Rect.Dy()
}

// Set writes the colour of a single pixel.
func (f *Frame) Set(x, y int, c colour.RGB) {
	r, g, b := c.RGB()
	f.img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xFF})
}

// Image returns the frame's backing image.
func (f *Frame) Image() *image.NRGBA {
	return f.img
}

// StartScreen initializes SDL2 and a new window.
func StartScreen(name string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	complete := false

	// Start SDL2.
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			sdl.Quit()	// Only want to call Quit if this function doesn't complete.
		}
	}()

	// Create new window.
	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			window.Destroy()	// Again, only want to call if this function doesn't complete.
		}
	}()

	// Get the screen from the new window.
	surface, err := window.GetSurface()
	if err != nil {
		return nil, nil, err
	}

	// Set mouse mode to relative.
	if sdl.SetRelativeMouseMode(true) != 0 {
		return nil, nil, fmt.Errorf("Relative mouse mode is not supported.")
	}

	complete = true
	return window, surface, nil
}

// StopScreen closes SDL2 and some window.
func StopScreen(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

// Draw blits a rendered frame onto the window's surface and presents it.
func Draw(window *sdl.Window, surface *sdl.Surface, frame *Frame) {
	surface.FillRect(nil, 0)
	for j := 0; j < frame.Height(); j++ {
		for i := 0; i < frame.Width(); i++ {
			surface.Set(i, j, frame.img.NRGBAAt(i, j))
		}
	}
	window.UpdateSurface()
}
