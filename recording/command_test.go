package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdSetPixel, "SetPixel"},
		{CmdFillRect, "FillRect"},
		{CmdLine, "Line"},
		{CmdShade, "Shade"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
