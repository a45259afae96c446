package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/exprlang"
	"github.com/dhamidi/parc/lex"
	"github.com/dhamidi/parc/parse"
)

func newExprCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "expr <expression>",
		Short: "Parse an arithmetic expression and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := exprlang.New(exprlang.WithObserver(a.observer("parc.exprlang")))

			r := parse.Left(g.Expression, lex.Spaces).Parse(args[0])
			if r.Failed() {
				return fmt.Errorf("parse expression: %s", r.Err)
			}
			if r.Rest != "" {
				return fmt.Errorf("unexpected trailing input: %q", r.Rest)
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(r.Value)
			case "value":
				v, err := exprlang.EvalExpr(r.Value, exprlang.Env{})
				if err != nil {
					return fmt.Errorf("evaluate: %w", err)
				}
				fmt.Println(v)
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "value", "output format (value, json)")

	return cmd
}
