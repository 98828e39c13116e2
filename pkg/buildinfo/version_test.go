package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "version: dev\ncommit: none\nbuilt: unknown", String())
}

func TestTemplate(t *testing.T) {
	assert.Equal(t, "{{.Name}} version dev\ncommit: none\nbuilt: unknown\n", Template())
}
