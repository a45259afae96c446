package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parc/exprlang"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run an exprlang program from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 {
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

			g := exprlang.New(exprlang.WithObserver(a.observer("parc.exprlang")))

			r := g.Program.Parse(string(source))
			if r.Failed() {
				return fmt.Errorf("parse program: %s", r.Err)
			}
			if r.Rest != "" {
				return fmt.Errorf("unexpected input at %q", r.Rest)
			}

			if err := exprlang.Run(r.Value, exprlang.Env{}, os.Stdout); err != nil {
				return fmt.Errorf("run program: %w", err)
			}
			return nil
		},
	}
}
