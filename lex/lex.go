// Package lex provides the leaf parsers grammars are built from:
// literal matching, single-character consumption, character-class
// predicates and an identifier token. Everything here is a plain
// parse.Parser; the structure on top comes from package parse.
package lex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/parc/parse"
)

// Match succeeds when the input starts with the given literal, producing
// the literal itself and stripping it from the input. A mismatch
// consumes nothing.
func Match(literal string) parse.Parser[string] {
	return func(input string) parse.Result[string] {
		if !strings.HasPrefix(input, literal) {
			return parse.Fail[string](input, "expected %q", literal)
		}
		return parse.Ok(literal, input[len(literal):])
	}
}

// Item consumes a single character. It fails only at end of input.
var Item parse.Parser[rune] = func(input string) parse.Result[rune] {
	if input == "" {
		return parse.Fail[rune](input, "unexpected end of input")
	}
	r, size := utf8.DecodeRuneInString(input)
	return parse.Ok(r, input[size:])
}

// Character-class predicates for use with Item.Pred. They carry no
// parsing state of their own.

func IsAlpha(r rune) bool { return unicode.IsLetter(r) }

func IsDigit(r rune) bool { return unicode.IsDigit(r) }

func IsAlphaNum(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// identJoiner may appear between alphanumeric runs inside an identifier.
const identJoiner = '_'

// Ident parses an identifier: an alphabetic first character followed by
// the maximal run of alphanumerics or underscores.
var Ident parse.Parser[string] = func(input string) parse.Result[string] {
	if input == "" {
		return parse.Fail[string](input, "unexpected end of input")
	}
	first, size := utf8.DecodeRuneInString(input)
	if !IsAlpha(first) {
		return parse.Fail[string](input, "identifier must start with a letter, got %q", first)
	}
	end := size
	for end < len(input) {
		r, n := utf8.DecodeRuneInString(input[end:])
		if !IsAlphaNum(r) && r != identJoiner {
			break
		}
		end += n
	}
	return parse.Ok(input[:end], input[end:])
}

// Spaces consumes the maximal run of whitespace, possibly empty. It
// never fails.
var Spaces parse.Parser[string] = func(input string) parse.Result[string] {
	end := 0
	for end < len(input) {
		r, n := utf8.DecodeRuneInString(input[end:])
		if !IsSpace(r) {
			break
		}
		end += n
	}
	return parse.Ok(input[:end], input[end:])
}
