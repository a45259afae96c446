// Package jsonish parses a JSON-like value language, built entirely by
// composing parsers from the parse and lex packages. It exists as a
// consumer of the combinator engine; it is not a conforming JSON parser
// (strings have no escape sequences, and single quotes are allowed).
package jsonish

// Value is the closed set of values the grammar produces.
type Value interface {
	value()
}

// Number is a numeric value.
type Number float64

func (Number) value() {}

// Bool is true or false.
type Bool bool

func (Bool) value() {}

// String is a quoted string. Either quote character delimits it, but
// the closing quote must match the opening one.
type String string

func (String) value() {}

// Array is an ordered list of values.
type Array []Value

func (Array) value() {}

// Object maps string keys to values.
type Object map[string]Value

func (Object) value() {}
