package exprlang

import (
	"fmt"
	"strconv"

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

// Grammar exposes the language's productions as reusable parsers. All
// of them skip leading whitespace and leave trailing input in the
// remainder.
type Grammar struct {
	Expression parse.Parser[Expr]
	Condition  parse.Parser[Cond]
	Statement  parse.Parser[Stmt]
	Program    parse.Parser[[]Stmt]
}

var keywords = map[string]bool{
	"let":   true,
	"if":    true,
	"else":  true,
	"while": true,
	"print": true,
}

// New builds the grammar.
func New(opts ...Option) *Grammar {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	tok := func(lit string) parse.Parser[string] {
		return parse.Right(lex.Spaces, lex.Match(lit))
	}

	word := parse.Right(lex.Spaces, lex.Ident)

	keyword := func(name string) parse.Parser[string] {
		return word.Pred(func(s string) bool { return s == name })
	}

	variable := word.Pred(func(s string) bool { return !keywords[s] })

	number := parse.Map(
		parse.Right(lex.Spaces, parse.OneOrMore(lex.Item.Pred(lex.IsDigit))),
		func(rs []rune) Expr {
			n, _ := strconv.ParseInt(string(rs), 10, 64)
			return NumberLit(n)
		})

	var expression parse.Parser[Expr]
	exprRef := parse.Lazy(func() parse.Parser[Expr] { return expression })

	var factor parse.Parser[Expr]
	factorRef := parse.Lazy(func() parse.Parser[Expr] { return factor })

	factor = parse.Choice(
		number,
		parse.Map(variable, func(s string) Expr { return VarRef(s) }),
		parse.Right(tok("("), parse.Left(exprRef, tok(")"))),
		parse.Map(parse.Right(tok("-"), factorRef), func(x Expr) Expr {
			return Unary{Op: "-", X: x}
		}),
	)

	binary := func(op string, left, right Expr) Expr {
		return Binary{Op: op, Left: left, Right: right}
	}

	term := chain(factor, parse.Choice(tok("*"), tok("/")), binary)
	expression = chain(term, parse.Choice(tok("+"), tok("-")), binary).
		Trace("exprlang.expression", cfg.observer)

	// Longer operators first, or "<" would shadow "<=".
	compareOp := parse.Choice(tok("=="), tok("!="), tok("<="), tok(">="), tok("<"), tok(">"))

	comparison := parse.Map(
		parse.Both(expression, parse.Both(compareOp, expression)),
		func(p parse.Pair[Expr, parse.Pair[string, Expr]]) Cond {
			return Compare{Op: p.Second.First, Left: p.First, Right: p.Second.Second}
		})

	var condition parse.Parser[Cond]
	condRef := parse.Lazy(func() parse.Parser[Cond] { return condition })

	var condAtom parse.Parser[Cond]
	condAtomRef := parse.Lazy(func() parse.Parser[Cond] { return condAtom })

	condAtom = parse.Choice(
		parse.Map(parse.Right(tok("!"), condAtomRef), func(x Cond) Cond {
			return Not{X: x}
		}),
		comparison,
		parse.Right(tok("("), parse.Left(condRef, tok(")"))),
	)

	logic := func(op string, left, right Cond) Cond {
		return Logic{Op: op, Left: left, Right: right}
	}

	andCond := chain(condAtom, tok("&&"), logic)
	condition = chain(andCond, tok("||"), logic).
		Trace("exprlang.condition", cfg.observer)

	var statement parse.Parser[Stmt]
	stmtRef := parse.Lazy(func() parse.Parser[Stmt] { return statement })

	block := parse.Right(tok("{"), parse.Left(parse.ZeroOrMore(stmtRef), tok("}")))

	letStmt := parse.Map(
		parse.Both(
			parse.Right(keyword("let"), variable),
			parse.Right(tok("="), parse.Left(expression, tok(";")))),
		func(p parse.Pair[string, Expr]) Stmt {
			return Let{Name: p.First, Value: p.Second}
		})

	assign := parse.Map(
		parse.Both(variable, parse.Right(tok("="), parse.Left(expression, tok(";")))),
		func(p parse.Pair[string, Expr]) Stmt {
			return Assign{Name: p.First, Value: p.Second}
		})

	printStmt := parse.Map(
		parse.Right(keyword("print"), parse.Left(expression, tok(";"))),
		func(x Expr) Stmt {
			return Print{Value: x}
		})

	ifStmt := parse.Map(
		parse.Both(
			parse.Right(keyword("if"), condition),
			parse.Both(block, parse.Optional(parse.Right(keyword("else"), block)))),
		func(p parse.Pair[Cond, parse.Pair[[]Stmt, parse.Option[[]Stmt]]]) Stmt {
			s := If{Cond: p.First, Then: p.Second.First}
			if p.Second.Second.Present {
				s.Else = p.Second.Second.Value
			}
			return s
		})

	whileStmt := parse.Map(
		parse.Both(parse.Right(keyword("while"), condition), block),
		func(p parse.Pair[Cond, []Stmt]) Stmt {
			return While{Cond: p.First, Body: p.Second}
		})

	statement = parse.Choice(letStmt, ifStmt, whileStmt, printStmt, assign).
		Trace("exprlang.statement", cfg.observer)

	program := parse.Left(parse.ZeroOrMore(statement), lex.Spaces)

	return &Grammar{
		Expression: expression,
		Condition:  condition,
		Statement:  statement,
		Program:    program,
	}
}

// chain parses a left-associative run of operands joined by operators,
// folding them with build as it goes.
func chain[T any](operand parse.Parser[T], op parse.Parser[string], build func(op string, left, right T) T) parse.Parser[T] {
	return parse.Map(
		parse.Both(operand, parse.ZeroOrMore(parse.Both(op, operand))),
		func(p parse.Pair[T, []parse.Pair[string, T]]) T {
			out := p.First
			for _, t := range p.Second {
				out = build(t.First, out, t.Second)
			}
			return out
		})
}

var defaultGrammar = New()

// ParseExpr parses a single expression and requires nothing but
// whitespace after it.
func ParseExpr(input string) (Expr, error) {
	r := parse.Left(defaultGrammar.Expression, lex.Spaces).Parse(input)
	if r.Failed() {
		return nil, fmt.Errorf("parse expression: %s", r.Err)
	}
	if r.Rest != "" {
		return nil, fmt.Errorf("unexpected trailing input: %q", r.Rest)
	}
	return r.Value, nil
}

// ParseProgram parses a sequence of statements up to end of input.
func ParseProgram(input string) ([]Stmt, error) {
	r := defaultGrammar.Program.Parse(input)
	if r.Failed() {
		return nil, fmt.Errorf("parse program: %s", r.Err)
	}
	if r.Rest != "" {
		return nil, fmt.Errorf("unexpected input at %q", r.Rest)
	}
	return r.Value, nil
}
