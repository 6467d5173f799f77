package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-juicedev/cli/cmds/value"
	"github.com/go-juicedev/cli/internal/command"
)

var errorColor = color.New(color.FgRed)

// run executes the command against args (without the program name) and
// returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd := value.NewCommand(command.Strict)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = errorColor.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
