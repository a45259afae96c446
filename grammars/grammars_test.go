package grammars

import (
	"bytes"
	"testing"

	"golang.org/x/exp/ebnf"
)

func TestShippedGrammars(t *testing.T) {
	for _, g := range All {
		t.Run(g.Name, func(t *testing.T) {
			grammar, err := ebnf.Parse(g.Name+".ebnf", bytes.NewReader(g.Source))
			if err != nil {
				t.Fatalf("parse: %s", err)
			}
			if err := ebnf.Verify(grammar, g.Start); err != nil {
				t.Fatalf("verify from %s: %s", g.Start, err)
			}
		})
	}
}
