package parse

// Pair is the value produced by Both: the results of two parsers run in
// sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is the value produced by Optional. Present is false when the
// wrapped parser failed and the absent marker was produced instead.
type Option[T any] struct {
	Value   T
	Present bool
}

// Unit is the empty value produced by Void and Sequence.
type Unit struct{}

// Both runs p then q, pairing their values. If either fails, Both fails
// with the remainder reset to its original input: no partial commitment
// is observable to the caller.
func Both[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		ra := p(input)
		if ra.Failed() {
			return failAs[A, Pair[A, B]](ra, input)
		}
		rb := q(ra.Rest)
		if rb.Failed() {
			return failAs[B, Pair[A, B]](rb, input)
		}
		return Ok(Pair[A, B]{First: ra.Value, Second: rb.Value}, rb.Rest)
	}
}

// Left runs p then q and keeps only p's value.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Both(p, q), func(pair Pair[A, B]) A { return pair.First })
}

// Right runs p then q and keeps only q's value.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Both(p, q), func(pair Pair[A, B]) B { return pair.Second })
}

// ZeroOrMore applies p repeatedly until it fails and collects the
// values. It always succeeds; zero matches yield an empty sequence and
// the input unchanged. Matching is greedy with no backtracking: once p
// fails, the loop stops, even if stopping earlier would let a
// surrounding combinator succeed. The loop also stops if p succeeds
// without consuming input, since such a success would repeat forever.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var values []T
		rest := input
		for {
			r := p(rest)
			if r.Failed() || r.Rest == rest {
				return Ok(values, rest)
			}
			values = append(values, r.Value)
			rest = r.Rest
		}
	}
}

// OneOrMore is ZeroOrMore with at least one required match. It fails
// exactly when the first application of p fails, propagating p's error.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	more := ZeroOrMore(p)
	return func(input string) Result[[]T] {
		first := p(input)
		if first.Failed() {
			return failAs[T, []T](first, input)
		}
		rest := more(first.Rest)
		return Ok(append([]T{first.Value}, rest.Value...), rest.Rest)
	}
}

// Optional tries p and always succeeds. When p fails, the value is the
// absent marker and the input is left unchanged.
func Optional[T any](p Parser[T]) Parser[Option[T]] {
	return func(input string) Result[Option[T]] {
		r := p(input)
		if r.Failed() {
			return Ok(Option[T]{}, input)
		}
		return Ok(Option[T]{Value: r.Value, Present: true}, r.Rest)
	}
}

// Choice tries each parser in order on the same input and returns the
// first success verbatim. All branches must produce the same value
// type; use Either when they do not. If every branch fails, Choice
// fails on the original input, reporting the diagnostic of the branch
// that consumed the most before failing.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		best := ""
		bestRest := len(input) + 1
		for _, p := range parsers {
			r := p(input)
			if !r.Failed() {
				return r
			}
			if len(r.Rest) < bestRest {
				best = r.Err
				bestRest = len(r.Rest)
			}
		}
		if best == "" {
			return Fail[T](input, "no alternative matched")
		}
		return Fail[T](input, "no alternative matched: %s", best)
	}
}

// Either is alternation over branches with differing value types,
// erased to any. The control flow is identical to Choice. Grammars that
// want static exhaustiveness should define a closed sum type and use
// Choice over it instead.
func Either(parsers ...Parser[any]) Parser[any] {
	return Choice(parsers...)
}

// Erase adapts a typed parser for use with Either.
func Erase[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Void discards the value of a successful parse.
func Void[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// Sequence applies each parser in order, discarding all values. It
// stops at the first failure and reports it with a sequence-incomplete
// diagnostic; like every other combinator, a failed Sequence consumes
// no input.
func Sequence(parsers ...Parser[Unit]) Parser[Unit] {
	return func(input string) Result[Unit] {
		rest := input
		for i, p := range parsers {
			r := p(rest)
			if r.Failed() {
				return Fail[Unit](input, "sequence incomplete at step %d: %s", i+1, r.Err)
			}
			rest = r.Rest
		}
		return Ok(Unit{}, rest)
	}
}
