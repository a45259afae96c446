package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc/exprlang"
	"github.com/dhamidi/parc/jsonish"
)

func newWatchCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file whenever it changes",
		Long: `Watch a file and re-parse it on every write.

The language is chosen by extension (.json is parsed as a jsonish
value, everything else as an exprlang program) unless --lang is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := filepath.Clean(args[0])

			if lang == "" {
				lang = "program"
				if filepath.Ext(filename) == ".json" {
					lang = "json"
				}
			}
			if lang != "program" && lang != "json" {
				return fmt.Errorf("unknown language: %s", lang)
			}

			check := func() {
				if err := checkOnce(a, filename, lang); err != nil {
					fmt.Printf("%s: %s\n", filename, err)
					return
				}
				fmt.Printf("%s: ok\n", filename)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory, not the file: editors that replace
			// the file on save would otherwise drop the watch.
			if err := watcher.Add(filepath.Dir(filename)); err != nil {
				return fmt.Errorf("watch %s: %w", filepath.Dir(filename), err)
			}

			log := commonlog.GetLogger("parc.watch")
			debounce := time.Duration(a.config.Watch.DebounceMS) * time.Millisecond

			check()

			var pending <-chan time.Time
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != filename {
						continue
					}
					if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
						continue
					}
					log.Debugf("event: %s", ev)
					pending = time.After(debounce)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Errorf("watch: %s", err.Error())
				case <-pending:
					pending = nil
					check()
				}
			}
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language to parse (program, json)")

	return cmd
}

func checkOnce(a *app, filename, lang string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch lang {
	case "json":
		_, err = jsonish.ParseAll(string(source))
	default:
		_, err = exprlang.ParseProgram(string(source))
	}
	return err
}
