// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/recordbook/recordbook/cmd/recordbook/cli"
	"github.com/recordbook/recordbook/lib/config"
	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/recordui"
)

type viewerParams struct {
	ConnectionParams
	LogOutput  string `flag:"log-output" desc:"write JSON debug logs to this file (default: viewer.log_output, else discarded)"`
	DateLayout string `flag:"date-layout" desc:"Go time layout for displayed dates (default: viewer.date_layout)"`
}

func viewerCommand() *cli.Command {
	var params viewerParams
	return &cli.Command{
		Name:    "viewer",
		Summary: "Browse and edit records in a terminal UI",
		Description: `Open the record viewer.

The viewer has three tabs. List shows every record; selecting one
(enter, or a click) loads it into Detail and Edit. Edit saves changes
back to the service with ctrl+s or the Save button.

Switch tabs with F1-F3, with 1-3 outside text fields, or by clicking
the tab bar. q quits outside text fields; ctrl+c quits anywhere.

Nothing is logged to the terminal while the viewer runs. Use
--log-output to capture failed service calls.`,
		Usage: "recordbook viewer [flags]",
		Examples: []cli.Example{
			{Description: "Open the viewer", Command: "recordbook viewer"},
			{Description: "Day-first dates, with a debug log", Command: "recordbook viewer --date-layout 02/01/2006 --log-output /tmp/viewer.log"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("viewer", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			cfg, err := params.resolve()
			if err != nil {
				return err
			}
			return runViewer(cfg)
		},
	}
}

// resolve loads the configuration with the viewer's flag overrides
// applied and validated.
func (params *viewerParams) resolve() (*config.Config, error) {
	cfg, err := params.loadConfig()
	if err != nil {
		return nil, err
	}
	if params.LogOutput != "" {
		cfg.Viewer.LogOutput = params.LogOutput
	}
	if params.DateLayout != "" {
		cfg.Viewer.DateLayout = params.DateLayout
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runViewer(cfg *config.Config) error {
	if _, err := os.Stat(cfg.Service.SocketPath); err != nil {
		return classifyCallError(err, cfg.Service.SocketPath)
	}

	logger, closeLog, err := cli.OpenFileLogger(cfg.Viewer.LogOutput)
	if err != nil {
		return cli.Validation("cannot open log file %s: %w", cfg.Viewer.LogOutput, err)
	}
	defer closeLog()

	// Honour NO_COLOR and CLICOLOR_FORCE on top of terminal detection.
	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("viewer starting", "socket", cfg.Service.SocketPath)
	app := recordui.NewApp(recordapi.NewClient(cfg.Service.SocketPath), recordui.Config{
		DateLayout: cfg.Viewer.DateLayout,
		Logger:     logger,
		Context:    ctx,
	})
	defer app.Dispose()

	program := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return cli.Internal("viewer: %w", err)
	}
	logger.Info("viewer exited")
	return nil
}
