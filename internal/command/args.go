package command

// Arg declares a single string flag of a command.
type Arg struct {
	Name      string
	ShortHand string
	Value     string
	Usage     string
	Required  bool
}
