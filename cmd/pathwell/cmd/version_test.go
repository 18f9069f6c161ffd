package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwell/ignore/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathwell")
	assert.Contains(t, out, version.Version)
}

func TestVersionCmd_Short(t *testing.T) {
	out, err := runCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
	assert.NotContains(t, out, "commit")
}
