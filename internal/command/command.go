package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Policy decides what happens to tokens that no Arg recognizes.
type Policy int

const (
	// Strict fails on any unrecognized token.
	Strict Policy = iota
	// Permissive ignores unrecognized flags and positional tokens.
	Permissive
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// NewCommand builds a strict command with one string flag per arg.
func NewCommand(name string, args ...Arg) *cobra.Command {
	return NewCommandWithPolicy(name, Strict, args...)
}

// NewCommandWithPolicy is like NewCommand but lets the caller choose how
// unrecognized tokens are handled.
//
// Errors are silenced on the returned command; the caller of Execute is
// expected to report them.
func NewCommandWithPolicy(name string, policy Policy, args ...Arg) *cobra.Command {
	var cmd = &cobra.Command{
		Use:           name,
		Args:          positionalArgs(policy),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	for _, arg := range args {
		cmd.Flags().StringP(arg.Name, arg.ShortHand, arg.Value, arg.Usage)
		if arg.Required {
			_ = cmd.MarkFlagRequired(arg.Name)
		}
	}
	cmd.FParseErrWhitelist.UnknownFlags = policy == Permissive
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return classify(err)
	})
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return checkValues(cmd.Flags(), args)
	}
	return cmd
}

func positionalArgs(policy Policy) cobra.PositionalArgs {
	if policy == Permissive {
		return cobra.ArbitraryArgs
	}
	return func(_ *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: %q", ErrUnrecognizedArgument, args[0])
		}
		return nil
	}
}

// checkValues rejects a flag whose value is itself a recognized flag, as in
// "-v -h": pflag hands the next token to -v whatever it looks like.
func checkValues(flags *pflag.FlagSet, args []Arg) error {
	for _, arg := range args {
		flag := flags.Lookup(arg.Name)
		if flag == nil || !flag.Changed {
			continue
		}
		if value := flag.Value.String(); isFlagToken(flags, value) {
			return fmt.Errorf("%w: flag needs an argument: %s is followed by flag %s", ErrMalformedArgument, spelling(flag), value)
		}
	}
	return nil
}

func isFlagToken(flags *pflag.FlagSet, token string) bool {
	switch {
	case strings.HasPrefix(token, "--"):
		name, _, _ := strings.Cut(token[2:], "=")
		return name != "" && flags.Lookup(name) != nil
	case strings.HasPrefix(token, "-") && len(token) > 1:
		return flags.ShorthandLookup(token[1:2]) != nil
	}
	return false
}

func spelling(flag *pflag.Flag) string {
	if flag.Shorthand != "" {
		return "-" + flag.Shorthand
	}
	return "--" + flag.Name
}
