package main

import "flag"

// Command-line flags that control optional rendering, audio, and runtime
// behavior.
var (
	// debugFlag enables the FPS and round-state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and round state overlay")

	// muteFlag disables the sound effect synthesizer entirely.
	muteFlag = flag.Bool("mute", false, "disable sound effects")

	// windowScaleFlag adjusts the integer window scale factor.
	windowScaleFlag = flag.Int("scale", windowScale, "integer window scale factor")

	// cpuProfileFlag writes a CPU profile to the given path for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
