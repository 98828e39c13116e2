package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want tree.Tree
		code errors.Code
	}{
		{"valid", "3 3 2 1", tree.New(2, 2, 2, 1), ""},
		{"minimal", "1 1 1 0", tree.New(0, 0, 1, 0), ""},
		{"signed plus", "+3 1 1 0", tree.New(2, 0, 1, 0), ""},
		{"three tokens", "1 2 3", tree.Tree{}, errors.ErrCodeInvalidTokenCount},
		{"five tokens", "1 2 3 4 5", tree.Tree{}, errors.ErrCodeInvalidTokenCount},
		{"non-numeric", "a b c d", tree.Tree{}, errors.ErrCodeInvalidFormat},
		{"float", "1.5 1 1 0", tree.Tree{}, errors.ErrCodeInvalidFormat},
		{"overflow", "99999999999999999999 1 1 0", tree.Tree{}, errors.ErrCodeInvalidFormat},
		{"zero origin", "0 0 2 1", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"crown off left edge", "2 1 3 0", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"zero crown", "5 5 0 1", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"negative trunk", "5 5 1 -1", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"min int column", "-9223372036854775808 1 1 0", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"min int row", "1 -9223372036854775808 1 0", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"max int trunk", "1 1 1 9223372036854775807", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
		{"max int crown", "9223372036854775807 1 9223372036854775807 0", tree.Tree{}, errors.ErrCodeInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.code == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			assert.NotEmpty(t, errors.UserMessage(err))
		})
	}
}

func TestLimitsCheck(t *testing.T) {
	l := Limits{MaxWidth: 5, MaxHeight: 5}

	assert.NoError(t, l.Check(tree.New(2, 0, 3, 2)))
	assert.NoError(t, Limits{}.Check(tree.New(1<<20, 1<<20, 1, 0)))

	assert.Error(t, l.Check(tree.New(3, 0, 3, 0)))
	assert.Error(t, l.Check(tree.New(2, 0, 3, 3)))
	assert.Error(t, l.Check(tree.New(0, 5, 1, 0)))
	assert.Error(t, l.Check(tree.New(0, 0, 1, 1<<40)))
}
