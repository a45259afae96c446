// Package exprlang implements a small expression and statement
// language on top of the parse combinators: integer arithmetic,
// boolean conditions, and statements (let, assignment, if, while,
// print). Like jsonish, it is a consumer of the engine and uses no
// parsing machinery of its own.
package exprlang

// Expr is the closed set of arithmetic expression nodes.
type Expr interface {
	expr()
}

// NumberLit is an integer literal.
type NumberLit int64

func (NumberLit) expr() {}

// VarRef reads a variable.
type VarRef string

func (VarRef) expr() {}

// Unary is a prefix operator application. Op is "-".
type Unary struct {
	Op string
	X  Expr
}

func (Unary) expr() {}

// Binary is an infix operator application. Op is one of + - * /.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

func (Binary) expr() {}

// Cond is the closed set of condition nodes.
type Cond interface {
	cond()
}

// Compare relates two expressions. Op is one of == != < <= > >=.
type Compare struct {
	Op    string
	Left  Expr
	Right Expr
}

func (Compare) cond() {}

// Logic combines two conditions. Op is "&&" or "||".
type Logic struct {
	Op    string
	Left  Cond
	Right Cond
}

func (Logic) cond() {}

// Not negates a condition.
type Not struct {
	X Cond
}

func (Not) cond() {}

// Stmt is the closed set of statement nodes.
type Stmt interface {
	stmt()
}

// Let introduces a variable.
type Let struct {
	Name  string
	Value Expr
}

func (Let) stmt() {}

// Assign updates an existing variable.
type Assign struct {
	Name  string
	Value Expr
}

func (Assign) stmt() {}

// Print evaluates an expression and writes it to the interpreter's
// output.
type Print struct {
	Value Expr
}

func (Print) stmt() {}

// If runs Then when the condition holds, otherwise Else. Else may be
// nil when no else branch was written.
type If struct {
	Cond Cond
	Then []Stmt
	Else []Stmt
}

func (If) stmt() {}

// While runs Body as long as the condition holds.
type While struct {
	Cond Cond
	Body []Stmt
}

func (While) stmt() {}
