package errors

import "unicode/utf8"

// ValidateGlyph checks that s is usable as a canvas glyph: exactly one
// printable ASCII character. The canvas stores one byte per cell, so
// multi-byte runes are rejected too.
func ValidateGlyph(name, s string) error {
	if s == "" {
		return New(ErrCodeInvalidGlyph, "%s glyph cannot be empty", name)
	}
	if utf8.RuneCountInString(s) != 1 {
		return New(ErrCodeInvalidGlyph, "%s glyph must be a single character, got %q", name, s)
	}
	c := s[0]
	if len(s) != 1 || c < 0x20 || c > 0x7e {
		return New(ErrCodeInvalidGlyph, "%s glyph must be printable ASCII, got %q", name, s)
	}
	return nil
}

// ValidateLimit checks that a canvas limit is non-negative.
// Zero means unlimited.
func ValidateLimit(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidLimit, "%s cannot be negative (got %d)", name, v)
	}
	return nil
}
