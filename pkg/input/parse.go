package input

import (
	"strconv"
	"strings"

	"github.com/matzehuels/treecanvas/pkg/errors"
	"github.com/matzehuels/treecanvas/pkg/tree"
)

// FieldCount is the number of integers each input line must hold.
const FieldCount = 4

// User-facing messages for rejected lines.
const (
	MsgTokenCount  = "The input must consist of four numbers. Please try again."
	MsgFormat      = "The input is in incorrect format. Please try again."
	MsgCoordinates = "These input coordinates are invalid. Please try again."
	MsgTooLarge    = "This tree does not fit within the canvas limits. Please try again."
)

// Parse turns one input line into a validated Tree. Surrounding whitespace and
// repeated separators are ignored.
func Parse(line string) (tree.Tree, error) {
	values, err := parseFields(line)
	if err != nil {
		return tree.Tree{}, err
	}

	if values[0] < 1 || values[1] < 1 {
		return tree.Tree{}, errors.Wrap(errors.ErrCodeInvalidCoordinates,
			errors.New(errors.ErrCodeInvalidCoordinates, "position (%d,%d) is not 1-based", values[0], values[1]),
			MsgCoordinates)
	}
	t := tree.FromInput(values[0], values[1], values[2], values[3])
	if err := t.Validate(); err != nil {
		return tree.Tree{}, errors.Wrap(errors.ErrCodeInvalidCoordinates, err, MsgCoordinates)
	}
	return t, nil
}

func parseFields(line string) ([FieldCount]int, error) {
	var values [FieldCount]int

	fields := strings.Fields(line)
	if len(fields) != FieldCount {
		return values, errors.Wrap(errors.ErrCodeInvalidTokenCount,
			errors.New(errors.ErrCodeInvalidTokenCount, "got %d tokens", len(fields)), MsgTokenCount)
	}

	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return values, errors.Wrap(errors.ErrCodeInvalidFormat, err, MsgFormat)
		}
		values[i] = v
	}
	return values, nil
}
