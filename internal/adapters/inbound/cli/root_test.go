package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extcheck/extcheck/internal/adapters/inbound/cli"
)

func TestRootCmd_HasAllSubcommands(t *testing.T) {
	cmd := cli.NewRootCmdForTest()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "structure")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "refs")
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "mcp")
	assert.Contains(t, names, "version")
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "extcheck")
}
