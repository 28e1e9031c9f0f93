// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/recordbook/recordbook/cmd/recordbook/cli"
	"github.com/recordbook/recordbook/lib/recordapi"
)

type showParams struct {
	CallParams
	cli.JSONOutput
	DateLayout string `flag:"date-layout" desc:"Go time layout for the date (default: viewer.date_layout)"`
}

func showCommand() *cli.Command {
	var params showParams
	return &cli.Command{
		Name:    "show",
		Summary: "Show one record",
		Description: `Show the record with the given ID.

Exits with a not-found error when no record has that ID.`,
		Usage: "recordbook show <id> [flags]",
		Examples: []cli.Example{
			{Description: "Show record 1", Command: "recordbook show 1"},
			{Description: "As JSON", Command: "recordbook show 1 --json"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("show takes exactly one record ID, got %d arguments", len(args))
			}
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}
			layout := params.DateLayout
			if layout == "" {
				layout = cfg.Viewer.DateLayout
			}
			logger := cli.NewCommandLogger(params.Verbose).With("command", "show", "id", args[0])
			api := recordapi.NewClient(cfg.Service.SocketPath)
			return callService(logger, cfg.Service.SocketPath, func(ctx context.Context) error {
				return runShow(ctx, api, args[0], layout, &params.JSONOutput, os.Stdout, time.Now())
			})
		},
	}
}

func runShow(ctx context.Context, api recordapi.API, id, layout string, output *cli.JSONOutput, out io.Writer, now time.Time) error {
	entry, err := api.GetRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("record %q: %w", id, err)
	}
	if done, err := output.EmitJSON(out, entry); done {
		return err
	}

	writer := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "ID:\t%s\n", entry.ID)
	fmt.Fprintf(writer, "Name:\t%s\n", entry.Name)
	fmt.Fprintf(writer, "Number:\t%s\n", entry.Number)
	if entry.Date.IsZero() {
		fmt.Fprintf(writer, "Date:\t-\n")
	} else {
		fmt.Fprintf(writer, "Date:\t%s (%s)\n", entry.Date.Format(layout), relativeAge(entry.Date, now))
	}
	return writer.Flush()
}
