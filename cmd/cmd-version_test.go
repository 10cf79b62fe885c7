package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVersion(t *testing.T) {
	info := newBuildInfo("1.2.0", []string{"please"})
	assert.Equal(t, "1.2.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)

	var out bytes.Buffer
	require.NoError(t, printVersion(&out, info, true))
	assert.Equal(t, "1.2.0\n", out.String())

	out.Reset()
	require.NoError(t, printVersion(&out, info, false))
	assert.Contains(t, out.String(), `"version":"1.2.0"`)
	assert.Contains(t, out.String(), `"become_methods":["please"]`)
}
