package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, "pathwell")
	assert.Contains(t, s, Version)
	assert.Contains(t, s, Commit)
	assert.Contains(t, s, runtime.Version())
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}
