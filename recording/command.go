package recording

import "github.com/gogpu/tally"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPath   CommandType = iota // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdDrawText                      // Draw centered text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawText:   "DrawText",
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

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillPathCommand fills a path with a solid color.
type FillPathCommand struct {
	// Path references the path to fill in the resource pool.
	Path PathRef
	// Color is the fill color.
	Color tally.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path with a solid color.
type StrokePathCommand struct {
	// Path references the path to stroke in the resource pool.
	Path PathRef
	// Stroke holds width and dash pattern in pixels.
	Stroke tally.Stroke
	// Color is the stroke color.
	Color tally.RGBA
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws text centered on a point.
type DrawTextCommand struct {
	Text  string
	At    tally.Point
	Font  tally.Font
	Color tally.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
