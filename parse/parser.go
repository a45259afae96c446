// Package parse implements a small parser-combinator engine over string
// input. Parsers are pure functions from an input string to a Result;
// grammars are assembled by combining smaller parsers with the functional
// (Map, Pred, Bind) and structural (Both, ZeroOrMore, Choice, ...)
// combinators instead of writing recursive descent by hand.
//
// A parser built once may be reused for any number of Parse calls,
// including concurrently: it holds no mutable state, and failure is an
// ordinary return value, never a panic. Every combinator guarantees that
// a failed attempt consumes no input, so the remainder of a Failure
// result always equals the input the attempt started from.
//
// Self-referential grammars cannot be built eagerly; wrap the recursive
// reference in Lazy so it is resolved at parse time instead of at
// construction time. Call-stack depth then grows with the nesting depth
// of the input, which is the one unbounded resource this package does
// not cap.
package parse

// A Parser consumes a prefix of its input and produces a Result. Two
// calls with the same input yield identical results.
type Parser[T any] func(input string) Result[T]

// Parse applies the parser to the given input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// Map transforms the value of a successful parse with f, leaving the
// remainder untouched. Failures pass through unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)
		if r.Failed() {
			return failAs[A, B](r, input)
		}
		return Ok(f(r.Value), r.Rest)
	}
}

// Pred re-checks a successful value against f. If f rejects the value,
// the result is a Failure whose remainder is the original input, even
// though the inner parser consumed characters before the check.
func (p Parser[T]) Pred(f func(T) bool) Parser[T] {
	return func(input string) Result[T] {
		r := p(input)
		if r.Failed() {
			return failAs[T, T](r, input)
		}
		if !f(r.Value) {
			return Fail[T](input, "value %v rejected by predicate", r.Value)
		}
		return r
	}
}

// Bind feeds the value of a successful parse to f, obtaining the parser
// to run on the remainder. It lets the next parser depend on a
// previously parsed value, e.g. a closing delimiter that must equal the
// opening one. Failures of either step consume no input.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) Result[B] {
		r := p(input)
		if r.Failed() {
			return failAs[A, B](r, input)
		}
		next := f(r.Value)(r.Rest)
		if next.Failed() {
			next.Rest = input
		}
		return next
	}
}

// Lazy defers construction of a parser until parse time. Grammars that
// reference themselves, or a sibling that is not built yet, use Lazy to
// break the cycle:
//
//	var value Parser[Node]
//	element := Lazy(func() Parser[Node] { return value })
//	value = Choice(leaf, list(element))
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		return f()(input)
	}
}
