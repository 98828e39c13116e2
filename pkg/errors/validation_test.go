package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGlyph(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"dot", ".", false},
		{"star", "*", false},
		{"space", " ", false},
		{"hash", "#", false},
		{"tilde", "~", false},

		{"empty", "", true},
		{"two chars", "**", true},
		{"tab", "\t", true},
		{"newline", "\n", true},
		{"non-ascii", "é", true},
		{"emoji", "🌲", true},
		{"delete", "\x7f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGlyph("tree", tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateGlyph(%q) error = %v", tt.input, err)
			if err != nil {
				assert.True(t, Is(err, ErrCodeInvalidGlyph))
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.NoError(t, ValidateLimit("max width", 0))
	assert.NoError(t, ValidateLimit("max width", 1024))
	assert.True(t, Is(ValidateLimit("max width", -1), ErrCodeInvalidLimit))
}
