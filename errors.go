package seqregex

import "fmt"

// InvalidPatternArgument is the caller-facing error returned when a
// combinator is given an argument that cannot yield a well-formed
// pattern: a negative bound, max < min, a nil comparer, or a Recursive
// generator that returns no pattern. It is distinct from "no match" —
// match failure is never an error (see Pattern.Forward/Backward, whose
// empty iteration is the ordinary way to report "does not match").
type InvalidPatternArgument struct {
	// Op names the combinator that rejected construction, e.g. "Repeat".
	Op string

	// Arg names the offending argument, e.g. "min".
	Arg string

	// Reason describes why Arg was rejected.
	Reason string
}

func (e *InvalidPatternArgument) Error() string {
	return fmt.Sprintf("seqregex: %s: invalid argument %q: %s", e.Op, e.Arg, e.Reason)
}

func invalidArg(op, arg, reason string) error {
	return &InvalidPatternArgument{Op: op, Arg: arg, Reason: reason}
}
