package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/lobster"
)

var (
	red  = lobster.Hex("#C84820")
	blue = lobster.Hex("#1A4E8C")
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(40, 52)

	if rec.Width() != 40 {
		t.Errorf("Width() = %d, want 40", rec.Width())
	}
	if rec.Height() != 52 {
		t.Errorf("Height() = %d, want 52", rec.Height())
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.palette == nil {
		t.Error("palette should not be nil")
	}
}

func TestRecorderCommands(t *testing.T) {
	rec := NewRecorder(40, 52)
	rec.SetPixel(1, 2, red)
	rec.FillRect(3, 4, 5, 6, blue)
	rec.Line(0, 0, 10, 5, red)
	rec.Shade(7, 8, -20, -20, -20)

	r := rec.FinishRecording()
	cmds := r.Commands()
	if len(cmds) != 4 {
		t.Fatalf("len(Commands()) = %d, want 4", len(cmds))
	}

	wantTypes := []CommandType{CmdSetPixel, CmdFillRect, CmdLine, CmdShade}
	for i, want := range wantTypes {
		if got := cmds[i].Type(); got != want {
			t.Errorf("Commands()[%d].Type() = %v, want %v", i, got, want)
		}
	}

	px := cmds[0].(SetPixelCommand)
	if px.X != 1 || px.Y != 2 || r.Palette().Color(px.Color) != red {
		t.Errorf("SetPixel = %+v, want (1,2,%s)", px, red)
	}
	if line := cmds[2].(LineCommand); line.Color != px.Color {
		t.Errorf("Line colour ref = %d, want shared ref %d", line.Color, px.Color)
	}
	if r.Palette().Len() != 2 {
		t.Errorf("Palette().Len() = %d, want 2", r.Palette().Len())
	}
}

func TestRecorderEllipseExpandsToPixels(t *testing.T) {
	rec := NewRecorder(40, 52)

	want := 0
	lobster.Ellipse(20, 25, 10, 8, func(int, int, float64, float64) { want++ })

	rec.Ellipse(20, 25, 10, 8, func(x int, nx, ny float64) lobster.RGB {
		if ny < 0 {
			return red
		}
		return blue
	})

	r := rec.FinishRecording()
	if r.Len() != want {
		t.Fatalf("Len() = %d, want %d", r.Len(), want)
	}
	stats := r.Stats()
	if stats[CmdSetPixel] != want {
		t.Errorf("Stats()[SetPixel] = %d, want %d", stats[CmdSetPixel], want)
	}
	if r.Palette().Len() != 2 {
		t.Errorf("Palette().Len() = %d, want 2", r.Palette().Len())
	}
}

func TestPlaybackOrder(t *testing.T) {
	rec := NewRecorder(4, 4)
	rec.FillRect(0, 0, 3, 3, blue)
	rec.SetPixel(1, 1, red)
	rec.Line(0, 3, 3, 0, red)
	rec.Shade(2, 2, 18, 14, 8)
	r := rec.FinishRecording()

	mock := newMockBackend("mock")
	if err := r.Playback(mock); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.width != 4 || mock.height != 4 {
		t.Errorf("Begin size = %dx%d, want 4x4", mock.width, mock.height)
	}

	want := []string{
		"FillRect(0,0,3,3,#1a4e8c)",
		"SetPixel(1,1,#c84820)",
		"Line(0,3,3,0,#c84820)",
		"Shade(2,2,18,14,8)",
	}
	if len(mock.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", mock.calls, want)
	}
	for i := range want {
		if mock.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, mock.calls[i], want[i])
		}
	}
}

func TestPlaybackBeginError(t *testing.T) {
	r := NewRecorder(4, 4).FinishRecording()
	boom := errors.New("boom")
	mock := newMockBackend("mock")
	mock.beginErr = boom

	err := r.Playback(mock)
	if !errors.Is(err, boom) {
		t.Fatalf("Playback error = %v, want wrapped %v", err, boom)
	}
	if mock.endCalls != 0 {
		t.Errorf("End called %d times after Begin failed", mock.endCalls)
	}
}

func TestPlaybackIsRepeatable(t *testing.T) {
	rec := NewRecorder(4, 4)
	rec.SetPixel(0, 0, red)
	r := rec.FinishRecording()

	for i := range 3 {
		mock := newMockBackend("mock")
		if err := r.Playback(mock); err != nil {
			t.Fatalf("Playback %d failed: %v", i, err)
		}
		if len(mock.calls) != 1 {
			t.Errorf("Playback %d: %d calls, want 1", i, len(mock.calls))
		}
	}
}
