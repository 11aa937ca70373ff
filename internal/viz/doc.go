// Package viz renders field cross-sections and probe series in the
// terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas for line plots and SVG export
//   - [Heatmap]: shaded rendering of a field plane with signed colors
//   - [ProbePlot]: asciigraph rendering of a probe time series
//   - [Model]: live view of a running engine
//
// # Key Bindings
//
//	Space - Pause/Resume stepping
//	R     - Rebuild and restart the run
//	C     - Cycle the displayed field component
//	?     - Show help overlay
//
// The live view steps the engine on a timer and reads planes through
// the engine's snapshot accessors, so rendering never holds the field
// locks across a frame.
package viz
