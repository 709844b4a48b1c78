// Package trace provides the closest-hit, visibility, and recursive shading
// queries at the heart of the ray tracer, along with the render driver.
package trace

import (
	"github.com/tvanier/glint/colour"
	"github.com/tvanier/glint/state"
	"runtime"
	"sync"
)

// Image represents an output sink the render driver writes pixels into.
type Image interface {
	Width() int
	Height() int
	Set(x, y int, c colour.RGB)
}

// Render computes a colour for every pixel of img from the environment's
// point of view, using as many workers as the machine has CPUs.
// The environment is read-only for the duration of the call and must not be
// mutated concurrently.
func Render(env *state.Environment, img Image) {
	RenderWorkers(env, img, runtime.NumCPU())
}

// RenderWorkers computes a colour for every pixel of img using the given
// number of workers.
// The image rows are handed out over a channel; each pixel's computation
// reads only the immutable environment and writes exactly one pixel, so the
// workers need no synchronization beyond the final WaitGroup.
func RenderWorkers(env *state.Environment, img Image, workers int) {
	if workers < 1 {
		workers = 1
	}
	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				for i := 0; i < width; i++ {
					img.Set(i, j, Pixel(env, i, j, width, height))
				}
			}
		}()
	}
	wg.Wait()
}

// Pixel resolves the colour of the pixel (i, j) in a width-by-height image.
// The pixel is subdivided into the camera's N-by-N grid of evenly spaced
// sub-samples, one camera ray is traced through each, and the sub-sample
// colours are averaged component-wise. A ray that strikes nothing
// contributes black.
func Pixel(env *state.Environment, i, j, width, height int) colour.RGB {
	n := env.Cam.Samples
	if n < 1 {
		n = 1
	}
	aspect := float64(width) / float64(height)

	samples := make([]colour.RGB, 0, n * n)
	for sj := 0; sj < n; sj++ {
		for si := 0; si < n; si++ {
			x := (float64(i) + (float64(si) + 0.5) / float64(n)) / float64(width)
			y := (float64(j) + (float64(sj) + 0.5) / float64(n)) / float64(height)

			ray := env.Cam.RayThrough(x, y, aspect)
			sample := colour.RGB{}
			if hit, ok := ClosestHit(env, ray.Origin, ray.Dir); ok {
				sample = ResolveColor(env, hit, 0)
			}
			samples = append(samples, sample)
		}
	}
	return colour.Average(samples)
}
