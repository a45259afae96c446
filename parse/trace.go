package parse

// TraceEvent describes one observed parse attempt.
type TraceEvent struct {
	Label   string
	Input   string
	Outcome Outcome
	Rest    string
	Err     string // empty on Success
}

// Observer receives trace events from parsers wrapped with Trace.
type Observer interface {
	Observe(TraceEvent)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(TraceEvent)

func (f ObserverFunc) Observe(e TraceEvent) {
	f(e)
}

// Trace reports every attempt of p to the observer, labelled for
// identification. The returned parser produces exactly the same results
// as p; observation is the only side effect. A nil observer returns p
// unchanged, so tracing can be compiled into a grammar unconditionally
// and enabled by injection.
func (p Parser[T]) Trace(label string, obs Observer) Parser[T] {
	if obs == nil {
		return p
	}
	return func(input string) Result[T] {
		r := p(input)
		obs.Observe(TraceEvent{
			Label:   label,
			Input:   input,
			Outcome: r.Outcome,
			Rest:    r.Rest,
			Err:     r.Err,
		})
		return r
	}
}
