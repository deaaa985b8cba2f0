package recording

import (
	"fmt"

	"github.com/gogpu/lobster"
)

// Recorder captures drawing operations as commands.
// It mirrors the lobster.Pixmap drawing API but generates commands instead
// of writing pixels. Use FinishRecording to obtain an immutable Recording
// that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(40, 52)
//	rec.FillRect(12, 15, 15, 19, lobster.Hex("#C84820"))
//	rec.Line(18, 14, 6, 0, lobster.Hex("#6E2810"))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	palette       *Palette
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 1024),
		palette:  NewPalette(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// SetPixel records a single pixel write.
func (r *Recorder) SetPixel(x, y int, c lobster.RGB) {
	r.commands = append(r.commands, SetPixelCommand{X: x, Y: y, Color: r.palette.Add(c)})
}

// FillRect records an inclusive rectangle fill. Inverted rectangles are
// recorded as given and cover nothing.
func (r *Recorder) FillRect(x1, y1, x2, y2 int, c lobster.RGB) {
	r.commands = append(r.commands, FillRectCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: r.palette.Add(c)})
}

// Line records a Bresenham line from (x0,y0) to (x1,y1) inclusive.
func (r *Recorder) Line(x0, y0, x1, y1 int, c lobster.RGB) {
	r.commands = append(r.commands, LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: r.palette.Add(c)})
}

// Shade records an additive per-channel delta on one pixel.
func (r *Recorder) Shade(x, y, dr, dg, db int) {
	r.commands = append(r.commands, ShadeCommand{X: x, Y: y, DR: dr, DG: dg, DB: db})
}

// Ellipse rasterizes a filled ellipse and records one SetPixel per covered
// cell. color receives the cell's normalized offsets from the centre, see
// lobster.Ellipse, and returns the colour to paint.
func (r *Recorder) Ellipse(cx, cy, rx, ry float64, color func(x int, nx, ny float64) lobster.RGB) {
	lobster.Ellipse(cx, cy, rx, ry, func(x, y int, nx, ny float64) {
		r.SetPixel(x, y, color(x, nx, ny))
	})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
		palette:  r.palette,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation, any number of times
// and from multiple goroutines.
type Recording struct {
	width, height int
	commands      []Command
	palette       *Palette
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Palette returns the colours referenced by the commands.
func (r *Recording) Palette() *Palette {
	return r.palette
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Stats counts the recorded commands by type.
func (r *Recording) Stats() map[CommandType]int {
	stats := make(map[CommandType]int, len(commandTypeNames))
	for _, cmd := range r.commands {
		stats[cmd.Type()]++
	}
	return stats
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetPixelCommand:
			backend.SetPixel(c.X, c.Y, r.palette.Color(c.Color))
		case FillRectCommand:
			backend.FillRect(c.X1, c.Y1, c.X2, c.Y2, r.palette.Color(c.Color))
		case LineCommand:
			backend.Line(c.X0, c.Y0, c.X1, c.Y1, r.palette.Color(c.Color))
		case ShadeCommand:
			backend.Shade(c.X, c.Y, c.DR, c.DG, c.DB)
		}
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	lobster.Logger().Debug("recording played back",
		"commands", len(r.commands),
		"colors", r.palette.Len(),
		"size", fmt.Sprintf("%dx%d", r.width, r.height))
	return nil
}
