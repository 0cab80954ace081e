// Package codec encodes a party to the line-oriented text format used by
// save files, and decodes it back.
//
// Layout:
//
//	N
//	classID health mana strength agility wisdom E eq1 ... eqE
//	... (N record lines)
//
// Fields are decimal integers separated by exactly one space. Decoding is
// strict about the declared counts: a short or over-long record line, a
// missing record line, or a non-blank line after the last record is an error.
// Trailing blank lines are ignored.
package codec
