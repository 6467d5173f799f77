package value

import (
	"bytes"
	"testing"

	"github.com/go-juicedev/cli/internal/command"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, policy command.Policy, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewCommand(policy)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCommand_PrintsDefault(t *testing.T) {
	out, err := execute(t, command.Strict)
	require.NoError(t, err)
	require.Equal(t, DefaultValue+"\n", out)
}

func TestNewCommand_PrintsValue(t *testing.T) {
	out, err := execute(t, command.Strict, "-v", "42")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestNewCommand_Help(t *testing.T) {
	out, err := execute(t, command.Strict, "-h")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "-v, --value string")
	require.Contains(t, out, `a number (default "11")`)
	require.NotContains(t, out, "\n11\n")
}

func TestNewCommand_StrictRejectsUnknown(t *testing.T) {
	out, err := execute(t, command.Strict, "--bogus")
	require.ErrorIs(t, err, command.ErrUnrecognizedArgument)
	require.Empty(t, out)
}

func TestNewCommand_PermissiveIgnoresUnknown(t *testing.T) {
	out, err := execute(t, command.Permissive, "--bogus", "-v", "42")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}
