package jsonish

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dhamidi/parc/lex"
	"github.com/dhamidi/parc/parse"
)

type options struct {
	observer parse.Observer
}

// Option configures the grammar built by New.
type Option func(*options)

// WithObserver attaches a trace observer to the grammar's productions.
func WithObserver(obs parse.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// New builds the value grammar. The returned parser consumes leading
// whitespace and one value, leaving anything after it in the
// remainder; callers that want to reject trailing input should use
// ParseAll.
func New(opts ...Option) parse.Parser[Value] {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	digits := parse.Map(
		parse.OneOrMore(lex.Item.Pred(lex.IsDigit)),
		func(rs []rune) string { return string(rs) })

	number := parse.Map(
		parse.Both(
			parse.Optional(lex.Match("-")),
			parse.Both(digits, parse.Optional(parse.Right(lex.Match("."), digits)))),
		func(p parse.Pair[parse.Option[string], parse.Pair[string, parse.Option[string]]]) Value {
			text := p.Second.First
			if p.First.Present {
				text = "-" + text
			}
			if p.Second.Second.Present {
				text += "." + p.Second.Second.Value
			}
			f, _ := strconv.ParseFloat(text, 64)
			return Number(f)
		}).Trace("jsonish.number", cfg.observer)

	boolean := parse.Choice(
		parse.Map(lex.Match("true"), func(string) Value { return Bool(true) }),
		parse.Map(lex.Match("false"), func(string) Value { return Bool(false) }),
	).Trace("jsonish.bool", cfg.observer)

	// The closing quote must equal the opening one, so the body parser
	// depends on the parsed opening quote: a Bind grammar.
	quoted := parse.Bind(
		parse.Choice(lex.Match(`"`), lex.Match("'")),
		func(quote string) parse.Parser[string] {
			q, _ := utf8.DecodeRuneInString(quote)
			body := parse.Map(
				parse.ZeroOrMore(lex.Item.Pred(func(r rune) bool { return r != q })),
				func(rs []rune) string { return string(rs) })
			return parse.Left(body, lex.Match(quote))
		}).Trace("jsonish.string", cfg.observer)

	str := parse.Map(quoted, func(s string) Value { return String(s) })

	// value is assigned below; Lazy defers the reference until parse
	// time so the grammar can nest itself.
	var value parse.Parser[Value]
	element := parse.Lazy(func() parse.Parser[Value] { return value })

	comma := parse.Right(lex.Spaces, lex.Match(","))

	elements := parse.Map(
		parse.Both(element, parse.ZeroOrMore(parse.Right(comma, element))),
		func(p parse.Pair[Value, []Value]) Array {
			return append(Array{p.First}, p.Second...)
		})

	array := parse.Map(
		parse.Right(lex.Match("["),
			parse.Left(parse.Optional(elements), parse.Right(lex.Spaces, lex.Match("]")))),
		func(o parse.Option[Array]) Value {
			if !o.Present {
				return Array{}
			}
			return o.Value
		}).Trace("jsonish.array", cfg.observer)

	member := parse.Both(
		parse.Right(lex.Spaces, quoted),
		parse.Right(parse.Right(lex.Spaces, lex.Match(":")), element))

	members := parse.Map(
		parse.Both(member, parse.ZeroOrMore(parse.Right(comma, member))),
		func(p parse.Pair[parse.Pair[string, Value], []parse.Pair[string, Value]]) []parse.Pair[string, Value] {
			return append([]parse.Pair[string, Value]{p.First}, p.Second...)
		})

	object := parse.Map(
		parse.Right(lex.Match("{"),
			parse.Left(parse.Optional(members), parse.Right(lex.Spaces, lex.Match("}")))),
		func(o parse.Option[[]parse.Pair[string, Value]]) Value {
			obj := Object{}
			for _, m := range o.Value {
				obj[m.First] = m.Second
			}
			return obj
		}).Trace("jsonish.object", cfg.observer)

	value = parse.Right(lex.Spaces,
		parse.Choice(number, boolean, str, array, object),
	).Trace("jsonish.value", cfg.observer)

	return value
}

var defaultGrammar = New()

// Parse applies the default grammar to the input.
func Parse(input string) parse.Result[Value] {
	return defaultGrammar.Parse(input)
}

// ParseAll parses a single value and requires nothing but whitespace
// after it.
func ParseAll(input string) (Value, error) {
	r := parse.Left(defaultGrammar, lex.Spaces).Parse(input)
	if r.Failed() {
		return nil, fmt.Errorf("parse value: %s", r.Err)
	}
	if r.Rest != "" {
		return nil, fmt.Errorf("unexpected trailing input: %q", r.Rest)
	}
	return r.Value, nil
}
