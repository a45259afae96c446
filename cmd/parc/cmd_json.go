package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/jsonish"
	"github.com/dhamidi/parc/lex"
	"github.com/dhamidi/parc/parse"
)

func newJSONCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON-like value and print it as canonical JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 || args[0] == "-" {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			g := jsonish.New(jsonish.WithObserver(a.observer("parc.jsonish")))

			r := parse.Left(g, lex.Spaces).Parse(string(source))
			if r.Failed() {
				return fmt.Errorf("parse value: %s", r.Err)
			}
			if r.Rest != "" {
				return fmt.Errorf("unexpected trailing input: %q", r.Rest)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(r.Value)
		},
	}
}
