package exprlang

import (
	"fmt"
	"io"
)

// Env holds variable bindings during evaluation.
type Env map[string]int64

// EvalExpr evaluates an expression against the environment.
func EvalExpr(e Expr, env Env) (int64, error) {
	switch e := e.(type) {
	case NumberLit:
		return int64(e), nil
	case VarRef:
		v, ok := env[string(e)]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", string(e))
		}
		return v, nil
	case Unary:
		x, err := EvalExpr(e.X, env)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case Binary:
		left, err := EvalExpr(e.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := EvalExpr(e.Right, env)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %q", e.Op)
	}
	return 0, fmt.Errorf("unknown expression node %T", e)
}

// EvalCond evaluates a condition against the environment.
func EvalCond(c Cond, env Env) (bool, error) {
	switch c := c.(type) {
	case Compare:
		left, err := EvalExpr(c.Left, env)
		if err != nil {
			return false, err
		}
		right, err := EvalExpr(c.Right, env)
		if err != nil {
			return false, err
		}
		switch c.Op {
		case "==":
			return left == right, nil
		case "!=":
			return left != right, nil
		case "<":
			return left < right, nil
		case "<=":
			return left <= right, nil
		case ">":
			return left > right, nil
		case ">=":
			return left >= right, nil
		}
		return false, fmt.Errorf("unknown comparison %q", c.Op)
	case Logic:
		left, err := EvalCond(c.Left, env)
		if err != nil {
			return false, err
		}
		// Short-circuit before evaluating the right side.
		if c.Op == "&&" && !left {
			return false, nil
		}
		if c.Op == "||" && left {
			return true, nil
		}
		return EvalCond(c.Right, env)
	case Not:
		x, err := EvalCond(c.X, env)
		if err != nil {
			return false, err
		}
		return !x, nil
	}
	return false, fmt.Errorf("unknown condition node %T", c)
}

// Run executes statements in order. Print statements write one decimal
// number per line to out.
func Run(stmts []Stmt, env Env, out io.Writer) error {
	for _, s := range stmts {
		if err := runStmt(s, env, out); err != nil {
			return err
		}
	}
	return nil
}

func runStmt(s Stmt, env Env, out io.Writer) error {
	switch s := s.(type) {
	case Let:
		v, err := EvalExpr(s.Value, env)
		if err != nil {
			return err
		}
		env[s.Name] = v
		return nil
	case Assign:
		if _, ok := env[s.Name]; !ok {
			return fmt.Errorf("assignment to undefined variable %q", s.Name)
		}
		v, err := EvalExpr(s.Value, env)
		if err != nil {
			return err
		}
		env[s.Name] = v
		return nil
	case Print:
		v, err := EvalExpr(s.Value, env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, v)
		return err
	case If:
		hold, err := EvalCond(s.Cond, env)
		if err != nil {
			return err
		}
		if hold {
			return Run(s.Then, env, out)
		}
		return Run(s.Else, env, out)
	case While:
		for {
			hold, err := EvalCond(s.Cond, env)
			if err != nil {
				return err
			}
			if !hold {
				return nil
			}
			if err := Run(s.Body, env, out); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("unknown statement node %T", s)
}
