// Package recording provides a drawing surface that records operations
// instead of rasterizing them.
//
// A Recorder implements the same drawing methods the renderer issues against
// a *gg.Context. Every Fill and Stroke is captured as a typed command holding
// the path in device coordinates (the current transform already applied), the
// colour, and the stroke state. Recordings make render passes inspectable:
// tests assert on exact rectangles and curves, and the glyphed CLI prints them
// with its "ops" command.
//
// # Example
//
//	rec := recording.NewRecorder(480, 480)
//	render.DrawGlyph(rec, g, 'A', typo, sel)
//	for _, cmd := range rec.FinishRecording().Commands() {
//		fmt.Println(recording.Format(cmd))
//	}
package recording
