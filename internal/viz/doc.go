// Package viz renders recorded trajectories in the terminal.
//
// [Player] is a Bubble Tea program that replays a run sample by sample,
// drawing the phase portrait on a Braille [Canvas] next to an asciigraph
// chart of the output.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Rewind to t = 0
//	[ ]   - Step one sample back/forward
//	+ -   - Change playback speed
//	Q     - Quit
package viz
