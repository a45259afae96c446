package main

import (
	"bytes"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parc/grammars"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file",
		Long: `Parse and verify an EBNF grammar file.

With no argument, checks the grammar descriptions shipped with parc.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, g := range grammars.All {
					if err := checkGrammar(g.Name+".ebnf", g.Source, g.Start); err != nil {
						return err
					}
					fmt.Printf("ok\t%s\n", g.Name)
				}
				return nil
			}

			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			return checkGrammar(filename, source, startProduction)
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func checkGrammar(filename string, source []byte, startProduction string) error {
	grammar, err := ebnf.Parse(filename, bytes.NewReader(source))
	if err != nil {
		printErrors(err)
		return err
	}

	if startProduction == "" {
		return nil
	}

	if err := ebnf.Verify(grammar, startProduction); err != nil {
		printErrors(err)
		return err
	}

	return nil
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
