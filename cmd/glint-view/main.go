package main

import (
	"github.com/tvanier/glint/input"
	"github.com/tvanier/glint/screen"
	"github.com/tvanier/glint/state"
	"github.com/tvanier/glint/trace"
	"github.com/veandco/go-sdl2/sdl"
	"log"
	"os"
	"strconv"
)

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 4 {
		log.Fatalln("Improper parameters.  This program requires the parameters:"+
			"\n\t(1) scene file path"+
			"\n\t(2) window width"+
			"\n\t(3) window height")
	}

	// Parse the command line parameters.
	env, err := state.EnvironmentFromFile(os.Args[1])
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", os.Args[1], err)
	}
	width, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window width \"%s\": %v.\n", os.Args[2], err)
	}
	height, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		log.Fatalf("Could not parse window height \"%s\": %v.\n", os.Args[3], err)
	}

	// Interactive frames cannot afford supersampling.
	env.Cam.Samples = 1

	// Start the screen.
	window, surface, err := screen.StartScreen("glint", int(width), int(height))
	if err != nil {
		log.Fatalf("Could not start screen: %v.\n", err)
	}
	defer screen.StopScreen(window)

	frame := screen.NewFrame(int(width), int(height))

	// Run the input/update/render loop.
	var prevUpdate, currentUpdate uint32
	for running, moveDirs, yaw := true, uint8(0), 0.0; running; {
		prevUpdate = sdl.GetTicks()

		// Handle new inputs.
		running, moveDirs, yaw = input.HandleInputs(moveDirs, int(surface.W))

		// If the camera needs to move, move it.
		if moveDirs != 0 {
			env.Cam.Move(0.1,
				moveDirs & input.MoveForward != 0, moveDirs & input.MoveBackward != 0,
				moveDirs & input.MoveLeftward != 0, moveDirs & input.MoveRightward != 0,
				moveDirs & input.MoveUpward != 0, moveDirs & input.MoveDownward != 0)
		}

		// If the camera needs to rotate, rotate it around its configured axis.
		if yaw != 0.0 {
			env.Cam.Turn(yaw * env.Cam.Fov / 2.0)
		}

		// Draw the screen.
		trace.Render(env, frame)
		screen.Draw(window, surface, frame)

		// If there's still time before the next frame needs to be drawn, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate - prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
