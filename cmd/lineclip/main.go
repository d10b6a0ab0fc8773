// Package main is the entry point for the lineclip editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/lineclip/lineclip/internal/app"
)

// Build information, set via ldflags. Installs via `go install` fall
// back to the module build info.
var (
	version = "dev"
	commit  = "HEAD"
)

func build() string {
	v, c := version, commit
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
				}
			}
		}
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, c)
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	cmd := &cli.Command{
		Name:      "lineclip",
		Usage:     "Terminal text editor with line-wise clipboard commands",
		UsageText: "lineclip [options] [file]",
		ArgsUsage: "[file]",
		Description: `Lineclip is a small terminal editor built around line-wise clipboard
commands. Copy (Ctrl+C), Cut (Ctrl+X), and Duplicate (Ctrl+D) act on
whole lines whenever the selection is empty or crosses a line boundary,
and on the exact selection otherwise. Paste (Ctrl+V) inserts whole-line
clipboard content above the current line. The shifted chords
(Ctrl+Shift+C and friends) always use the exact selection.

Without a file argument lineclip opens an empty buffer; naming a file
that does not exist yet creates it on the first save.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to the config file",
				Sources:     cli.EnvVars("LINECLIP_CONFIG"),
				Destination: &opts.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error)",
				Sources:     cli.EnvVars("LINECLIP_LOG_LEVEL"),
				Destination: &opts.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to the log file (logging is off without one)",
				Sources:     cli.EnvVars("LINECLIP_LOG_FILE"),
				Destination: &opts.LogFile,
			},
			&cli.StringFlag{
				Name:        "init-script",
				Usage:       "path to the Lua init script",
				Sources:     cli.EnvVars("LINECLIP_INIT"),
				Destination: &opts.InitScript,
			},
			&cli.BoolFlag{
				Name:        "readonly",
				Aliases:     []string{"R"},
				Usage:       "open the buffer read-only",
				Destination: &opts.ReadOnly,
			},
			&cli.BoolFlag{
				Name:        "memory-clipboard",
				Usage:       "use a session-local clipboard instead of the system one",
				Destination: &opts.MemoryClipboard,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
			}
			opts.File = c.Args().First()
			return runEditor(opts)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runEditor(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	// The terminal runs raw, so Ctrl+C arrives as a key event; the
	// signal path covers SIGTERM and detached SIGINT senders.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		application.Shutdown()
	}()

	return application.Run()
}
