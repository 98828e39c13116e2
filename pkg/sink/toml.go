package sink

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOML encodes doc as a TOML document. Trees become an array of tables.
func TOML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return buf.Bytes(), nil
}
