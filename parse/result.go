package parse

import "fmt"

// Outcome is the two-state tag of a parse attempt.
type Outcome int

const (
	Success Outcome = iota
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result records the outcome of applying a parser to an input string.
//
// Rest is always a suffix of the input. On Success, Value holds the
// produced value and Err is empty. On Failure, Err holds a diagnostic
// message, Value is the zero value, and Rest equals the original input:
// a failed attempt never consumes input.
type Result[T any] struct {
	Outcome Outcome
	Rest    string
	Value   T
	Err     string
}

// Failed reports whether the result carries a Failure outcome.
func (r Result[T]) Failed() bool {
	return r.Outcome == Failure
}

// Ok builds a Success result with the given value and unconsumed remainder.
func Ok[T any](value T, rest string) Result[T] {
	return Result[T]{Outcome: Success, Value: value, Rest: rest}
}

// Fail builds a Failure result. The remainder must be the input the failed
// attempt started from.
func Fail[T any](rest string, format string, args ...any) Result[T] {
	return Result[T]{Outcome: Failure, Rest: rest, Err: fmt.Sprintf(format, args...)}
}

// failAs rebuilds a failure of one value type as a failure of another,
// preserving the diagnostic but pinning the remainder to the given input.
func failAs[T, U any](r Result[T], input string) Result[U] {
	return Result[U]{Outcome: Failure, Rest: input, Err: r.Err}
}
