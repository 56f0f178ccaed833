// Package textpos converts between line/column positions and linear byte
// offsets in a text buffer.
//
// Lines are split on '\n'. A Position's column is measured in bytes from
// the start of its line; the separator byte is not part of either adjacent
// line's column count but occupies one offset unit. Texts with mixed line
// endings ('\r\n' vs '\n') round-trip on the '\n' convention only; the '\r'
// counts as an ordinary column byte.
//
// All conversions are total: out-of-range lines, columns, and offsets clamp
// to the nearest valid location instead of failing.
package textpos
