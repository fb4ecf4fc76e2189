// Unreal Log Reader - interactive viewer for Unreal Engine log files.
//
// Loads a cook/editor log, classifies each line by severity and category,
// and provides filtering, duplicate suppression, multi-select, and clipboard
// export in a terminal UI.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/config"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/tui"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/watcher"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "unreal-log-reader <path-or-glob>",
		Short: "Interactive viewer for Unreal Engine logs",
		Long: `Unreal Log Reader loads an engine log file and lets you filter by
severity and category, suppress duplicate blocks, multi-select lines,
and copy cleaned-up excerpts to the clipboard.

The path argument may be a glob (e.g. "Saved/Logs/*.log"), in which
case the most recently modified match is opened.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch = watch
			}

			path, err := logfile.ResolveLatest(args[0])
			if err != nil {
				return err
			}

			return run(cfg, path)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload automatically when the file changes")
	cmd.SilenceUsage = true
	return cmd
}

func run(cfg *config.Config, path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan watcher.Event
	if cfg.Watch {
		w, err := watcher.New(path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		go w.Start(ctx)
		changes = w.Events
	}

	app := tui.NewApp(cfg, path, changes)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
