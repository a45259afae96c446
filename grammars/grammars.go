// Package grammars ships EBNF descriptions of the languages built on
// the combinator engine. They are documentation, not input to a parser
// generator; `parc grammar check` verifies they stay well-formed.
package grammars

import _ "embed"

//go:embed exprlang.ebnf
var exprlang []byte

//go:embed jsonish.ebnf
var jsonish []byte

// Grammar is one shipped EBNF grammar description.
type Grammar struct {
	Name   string
	Start  string
	Source []byte
}

// All lists the shipped grammar descriptions.
var All = []Grammar{
	{Name: "exprlang", Start: "Program", Source: exprlang},
	{Name: "jsonish", Start: "Value", Source: jsonish},
}
