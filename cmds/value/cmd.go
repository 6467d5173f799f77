package value

import (
	"fmt"
	"io"

	"github.com/go-juicedev/cli/internal/command"
	"github.com/spf13/cobra"
)

// DefaultValue is printed when -v is not given.
const DefaultValue = "11"

func do(w io.Writer, value string) error {
	_, err := fmt.Fprintln(w, value)
	return err
}

func NewCommand(policy command.Policy) *cobra.Command {
	valueArg := command.Arg{
		Name:      "value",
		ShortHand: "v",
		Value:     DefaultValue,
		Usage:     "a number",
	}
	cmd := command.NewCommandWithPolicy("cli", policy, valueArg)
	cmd.Short = "Print the value given with -v"
	cmd.Long = "Print the value given with -v, or " + DefaultValue + " when it is omitted."
	cmd.Example = "  cli\n" +
		"  cli -v 42"
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		value, _ := cmd.Flags().GetString(valueArg.Name)
		return do(cmd.OutOrStdout(), value)
	}
	return cmd
}
