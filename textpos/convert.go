package textpos

import "strings"

// Offset converts a position to a byte offset within text.
//
// Out-of-range values clamp rather than fail: a line past the end of the
// text yields the offset of the end of the text, a column past the end of
// its line yields the offset of the line's last byte, and a negative line
// or column yields 0.
func Offset(text string, p Position) int {
	if p.Line < 0 || p.Column < 0 {
		return 0
	}

	lineStart := 0
	for line := 0; line < p.Line; line++ {
		idx := strings.IndexByte(text[lineStart:], '\n')
		if idx < 0 {
			// Fewer lines than requested: clamp to end of text.
			return len(text)
		}
		lineStart += idx + 1
	}

	lineLen := strings.IndexByte(text[lineStart:], '\n')
	if lineLen < 0 {
		lineLen = len(text) - lineStart
	}

	col := p.Column
	if col > lineLen {
		col = lineLen
	}
	return lineStart + col
}

// PositionAt converts a byte offset within text to a position.
//
// Offsets past the end of the text clamp to the final position; negative
// offsets clamp to (0:0). An offset landing exactly on a line separator is
// attributed to the end of the preceding line.
func PositionAt(text string, offset int) Position {
	if offset < 0 {
		return Position{}
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := 0
	lineStart := 0
	for {
		idx := strings.IndexByte(text[lineStart:], '\n')
		if idx < 0 {
			return Position{Line: line, Column: offset - lineStart}
		}
		sep := lineStart + idx
		if offset <= sep {
			return Position{Line: line, Column: offset - lineStart}
		}
		lineStart = sep + 1
		line++
	}
}

// Advance returns the position reached after inserting text at start.
// Multi-line text moves the line forward and restarts the column count on
// the final inserted line.
func Advance(start Position, text string) Position {
	idx := strings.LastIndexByte(text, '\n')
	if idx < 0 {
		return Position{Line: start.Line, Column: start.Column + len(text)}
	}
	return Position{
		Line:   start.Line + strings.Count(text, "\n"),
		Column: len(text) - idx - 1,
	}
}
