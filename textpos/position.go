package textpos

import "fmt"

// Position represents a line and column location in a text buffer.
// Both Line and Column are 0-indexed. Column is measured in bytes from
// the start of the line.
type Position struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed column (byte offset within line)
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// Range represents a span of the buffer between two positions.
// Start must not come after End.
type Range struct {
	Start Position
	End   Position
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Contains returns true if p lies within the range, inclusive of both ends.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && !p.After(r.End)
}

// IsEmpty returns true if the range spans no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}
