package main

import (
	"flag"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/tvanier/glint/screen"
	"github.com/tvanier/glint/state"
	"github.com/tvanier/glint/trace"
	"image"
	"log"
	"time"
)

func main() {
	scenePath := flag.String("scene", "", "path to the JSON scene description")
	outPath := flag.String("out", "out.png", "path of the image to write; the extension picks the format")
	width := flag.Int("width", 960, "output image width in pixels")
	height := flag.Int("height", 540, "output image height in pixels")
	samples := flag.Int("samples", 0, "anti-aliasing factor override (N of NxN supersampling)")
	depth := flag.Int("depth", 0, "maximum shading recursion depth override")
	workers := flag.Int("workers", 0, "number of render workers (0 means one per CPU)")
	scale := flag.Float64("scale", 1.0, "resampling factor applied to the finished image")
	flag.Parse()

	if *scenePath == "" {
		log.Fatalln("No scene provided.  Use -scene to point at a JSON scene description.")
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("Improper image dimensions %dx%d.\n", *width, *height)
	}

	// Read in the scene.
	env, err := state.EnvironmentFromFile(*scenePath)
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", *scenePath, err)
	}
	if *samples > 0 {
		env.Cam.Samples = *samples
	}
	if *depth > 0 {
		env.MaxDepth = *depth
	}
	log.Printf("Rendering %d surfaces and %d lights at %dx%d with %dx%d samples per pixel.\n",
		env.Surfaces(), len(env.Lights), *width, *height, env.Cam.Samples, env.Cam.Samples)

	// Render the frame.
	frame := screen.NewFrame(*width, *height)
	start := time.Now()
	if *workers > 0 {
		trace.RenderWorkers(env, frame, *workers)
	}else{
		trace.Render(env, frame)
	}
	log.Printf("Rendered in %v.\n", time.Since(start))

	// Resample the finished image if requested, then write it out.
	var img image.Image = frame.Image()
	if *scale != 1.0 {
		if *scale <= 0.0 {
			log.Fatalf("Improper scale factor %v.\n", *scale)
		}
		img = resize.Resize(uint(float64(*width) * *scale), uint(float64(*height) * *scale), img, resize.Lanczos3)
	}
	if err := imaging.Save(img, *outPath); err != nil {
		log.Fatalf("Could not write image \"%s\": %v.\n", *outPath, err)
	}
	log.Printf("Wrote %s.\n", *outPath)
}
