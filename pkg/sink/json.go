package sink

import (
	"encoding/json"
	"fmt"
)

// JSON encodes doc as indented JSON with a trailing newline.
func JSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}
