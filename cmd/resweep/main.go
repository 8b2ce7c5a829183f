// Command resweep is an interactive terminal application for recursive
// search-and-replace across a directory tree (§1).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resweep/internal/config"
	"resweep/internal/logging"
	"resweep/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "resweep:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		hidden        bool
		advancedRegex bool
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:     "resweep [DIRECTORY]",
		Short:   "Recursive search-and-replace across a directory tree",
		Version: "0.1.0",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			return run(cmd, root, hidden, advancedRegex, logLevel)
		},
	}

	cmd.Flags().BoolVarP(&hidden, "hidden", ".", false, "include hidden files and directories")
	cmd.Flags().BoolVar(&advancedRegex, "advanced-regex", false, "use the advanced regex engine (lookaround, backreferences)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, root string, hidden, advancedRegex bool, logLevel string) error {
	cfg, err := config.Load(root,
		cmd.Flags().Changed("hidden"), hidden,
		advancedRegex,
		cmd.Flags().Changed("log-level"), logLevel,
	)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logPath := defaultLogPath()
	logger, closeLog, err := logging.New(logPath, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	defer closeLog()
	tui.SetLogger(logger.Slog())

	app, err := tui.NewApp(tui.Config{
		Root:          cfg.Root,
		IncludeHidden: cfg.IncludeHidden,
		AdvancedRegex: cfg.AdvancedRegex,
	})
	if err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer func() {
		// Restore the terminal on panic paths too (§6), then re-panic
		// so the failure is still visible to the caller.
		if r := recover(); r != nil {
			app.Close()
			panic(r)
		}
	}()
	defer app.Close()

	return app.Run()
}

func defaultLogPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.TempDir()
	} else {
		dir = filepath.Join(dir, ".local", "state", "resweep")
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		dir = filepath.Join(xdg, "resweep")
	}
	return filepath.Join(dir, "resweep.log")
}
