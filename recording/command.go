package recording

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetPixel CommandType = iota // Set one pixel
	CmdFillRect                    // Fill an inclusive rectangle
	CmdLine                        // Draw a Bresenham line
	CmdShade                       // Add a signed delta to one pixel
)

var commandTypeNames = [...]string{
	CmdSetPixel: "SetPixel",
	CmdFillRect: "FillRect",
	CmdLine:     "Line",
	CmdShade:    "Shade",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ColorRef is a reference to a colour in a Recording's Palette.
type ColorRef uint32

// SetPixelCommand writes one opaque pixel. Off-canvas coordinates are
// dropped at playback.
type SetPixelCommand struct {
	X, Y  int
	Color ColorRef
}

// Type implements Command.
func (SetPixelCommand) Type() CommandType { return CmdSetPixel }

// FillRectCommand fills the inclusive rectangle (X1,Y1)-(X2,Y2).
type FillRectCommand struct {
	X1, Y1, X2, Y2 int
	Color          ColorRef
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// LineCommand draws a one-pixel Bresenham line including both endpoints.
type LineCommand struct {
	X0, Y0, X1, Y1 int
	Color          ColorRef
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// ShadeCommand adds a signed delta to each channel of one pixel,
// saturating at 0 and 255.
type ShadeCommand struct {
	X, Y       int
	DR, DG, DB int
}

// Type implements Command.
func (ShadeCommand) Type() CommandType { return CmdShade }
