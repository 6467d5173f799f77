package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedArgument is returned when a flag is missing its value.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrUnrecognizedArgument is returned for a token that matches no flag
	// and is not the value of one.
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
)

// classify maps pflag parse errors onto ErrMalformedArgument and
// ErrUnrecognizedArgument. Errors it does not know are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument"):
		return fmt.Errorf("%w: %s", ErrMalformedArgument, msg)
	case strings.HasPrefix(msg, "unknown flag"),
		strings.HasPrefix(msg, "unknown shorthand flag"),
		strings.HasPrefix(msg, "bad flag syntax"):
		return fmt.Errorf("%w: %s", ErrUnrecognizedArgument, msg)
	}
	return err
}
