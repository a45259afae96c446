package exprlang

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalExpr(t *testing.T) {
	env := Env{"x": 4, "y": 3}

	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"x", 4},
		{"-x", -4},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 2 - 3", 5},
		{"x * y + 1", 13},
		{"7 / 2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseExpr(tt.input)
			if err != nil {
				t.Fatalf("ParseExpr: %s", err)
			}
			got, err := EvalExpr(e, env)
			if err != nil {
				t.Fatalf("EvalExpr: %s", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvalExprErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"nope + 1", "undefined variable"},
		{"1 / 0", "division by zero"},
		{"x / (y - 3)", "division by zero"},
	}

	env := Env{"x": 1, "y": 3}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseExpr(tt.input)
			if err != nil {
				t.Fatalf("ParseExpr: %s", err)
			}
			_, err = EvalExpr(e, env)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestEvalCond(t *testing.T) {
	env := Env{"x": 4, "y": 3}

	tests := []struct {
		input string
		want  bool
	}{
		{"x > y", true},
		{"x == y", false},
		{"x != y && y >= 3", true},
		{"x < y || y == 3", true},
		{"!(x <= y)", true},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := g.Condition.Parse(tt.input)
			if r.Failed() {
				t.Fatalf("parse failed: %s", r.Err)
			}
			got, err := EvalCond(r.Value, env)
			if err != nil {
				t.Fatalf("EvalCond: %s", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// Logical operators must not evaluate the right side when the left
// side already decides.
func TestEvalCondShortCircuit(t *testing.T) {
	g := New()
	env := Env{"x": 1}

	// The right side would fail with division by zero.
	r := g.Condition.Parse("x == 2 && 1 / 0 == 1")
	if r.Failed() {
		t.Fatalf("parse failed: %s", r.Err)
	}
	got, err := EvalCond(r.Value, env)
	if err != nil {
		t.Fatalf("EvalCond: %s", err)
	}
	if got {
		t.Errorf("got true, want false")
	}
}

func TestRunProgram(t *testing.T) {
	const src = `
let i = 3;
while i > 0 {
	print i;
	i = i - 1;
}
if i == 0 {
	print 100;
}
`
	stmts, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("ParseProgram: %s", err)
	}

	var out bytes.Buffer
	if err := Run(stmts, Env{}, &out); err != nil {
		t.Fatalf("Run: %s", err)
	}

	want := "3\n2\n1\n100\n"
	if out.String() != want {
		t.Errorf("output: got %q, want %q", out.String(), want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantErr string
	}{
		{"x = 1;", "undefined variable"},
		{"let x = 1 / 0;", "division by zero"},
		{"print y;", "undefined variable"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts, err := ParseProgram(tt.src)
			if err != nil {
				t.Fatalf("ParseProgram: %s", err)
			}
			var out bytes.Buffer
			err = Run(stmts, Env{}, &out)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
