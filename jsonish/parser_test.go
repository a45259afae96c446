package jsonish

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"1", Number(1)},
		{"-2.5", Number(-2.5)},
		{"0.25", Number(0.25)},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{`"hello"`, String("hello")},
		{`''`, String("")},
		{`'single'`, String("single")},
		{"[]", Array{}},
		{"[1, 2, 3]", Array{Number(1), Number(2), Number(3)}},
		{`[true, "x", [1]]`, Array{Bool(true), String("x"), Array{Number(1)}}},
		{"{}", Object{}},
		{`{"a": 1}`, Object{"a": Number(1)}},
		{`{'a': [1, 2], "b": {"c": true}}`, Object{
			"a": Array{Number(1), Number(2)},
			"b": Object{"c": Bool(true)},
		}},
		{" \n\t [ 1 , 2 ] ", Array{Number(1), Number(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAll(tt.input)
			if err != nil {
				t.Fatalf("ParseAll(%q): %s", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		`{"a": }`,
		"[1, ",
		"[1 2]",
		`"unterminated`,
		`"mismatch'`,
		`'mismatch"`,
		"truex",   // trailing input after a value
		"{1: 2}",  // keys must be strings
		"[1,, 2]", // empty element
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if v, err := ParseAll(input); err == nil {
				t.Errorf("ParseAll(%q) = %#v, want error", input, v)
			}
		})
	}
}

// The closing quote must equal the opening one; this is the grammar's
// use of Bind.
func TestQuoteMatching(t *testing.T) {
	good := map[string]String{
		`"double"`:     "double",
		`'single'`:     "single",
		`"with'inner"`: "with'inner",
		`'with"inner'`: `with"inner`,
	}
	for input, want := range good {
		got, err := ParseAll(input)
		if err != nil {
			t.Errorf("ParseAll(%q): %s", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAll(%q) = %#v, want %#v", input, got, want)
		}
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 100
	input := strings.Repeat("[", depth) + "1" + strings.Repeat("]", depth)

	got, err := ParseAll(input)
	if err != nil {
		t.Fatalf("ParseAll: %s", err)
	}
	for i := 0; i < depth; i++ {
		arr, ok := got.(Array)
		if !ok || len(arr) != 1 {
			t.Fatalf("level %d: got %#v", i, got)
		}
		got = arr[0]
	}
	if got != Number(1) {
		t.Errorf("innermost value: got %#v, want 1", got)
	}
}

// A shared grammar instance must behave identically across calls.
func TestGrammarReuse(t *testing.T) {
	g := New()
	const input = `{"a": [1, true, 'x']}`

	first := g.Parse(input)
	second := g.Parse(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestTrailingInputLeftInRemainder(t *testing.T) {
	r := Parse("1 2")
	if r.Failed() {
		t.Fatalf("parse failed: %s", r.Err)
	}
	if r.Value != Number(1) {
		t.Errorf("value: got %#v", r.Value)
	}
	if r.Rest != " 2" {
		t.Errorf("rest: got %q, want %q", r.Rest, " 2")
	}
}
