package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parc/logtrace"
	"github.com/dhamidi/parc/parse"
)

// app carries the settings shared by all subcommands: the merged
// config file and persistent flags.
type app struct {
	configPath string
	verbose    int
	trace      bool
	config     Config
}

// observer returns the trace observer to inject into a grammar, or nil
// when tracing is off.
func (a *app) observer(name string) parse.Observer {
	if !a.trace {
		return nil
	}
	return logtrace.New(name)
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "parc",
		Short: "Combinator-built parsers for small languages",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.config = cfg

			// Flags win over the config file.
			flags := cmd.Root().PersistentFlags()
			if !flags.Changed("verbose") {
				a.verbose = cfg.Verbose
			}
			if !flags.Changed("trace") {
				a.trace = cfg.Trace
			}

			commonlog.Configure(a.verbose, nil)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a parc.toml config file")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")
	flags.BoolVar(&a.trace, "trace", false, "log every parser attempt")

	rootCmd.AddCommand(newExprCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newJSONCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGrammarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
