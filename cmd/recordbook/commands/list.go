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

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/recordbook/recordbook/cmd/recordbook/cli"
	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/schema/record"
)

type listParams struct {
	CallParams
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List all records",
		Description: `List every record in service order.

The table shows each record's ID, name, number, date, and how long ago
that date was. With --json the records are printed as a JSON array with
ISO dates.`,
		Usage: "recordbook list [flags]",
		Examples: []cli.Example{
			{Description: "Print the record table", Command: "recordbook list"},
			{Description: "Names only, via jq", Command: "recordbook list --json | jq -r '.[].name'"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			cfg, err := params.loadConfig()
			if err != nil {
				return err
			}
			logger := cli.NewCommandLogger(params.Verbose).With("command", "list")
			api := recordapi.NewClient(cfg.Service.SocketPath)
			return callService(logger, cfg.Service.SocketPath, func(ctx context.Context) error {
				return runList(ctx, api, &params.JSONOutput, os.Stdout, time.Now())
			})
		},
	}
}

// runList prints every record to out. Relative ages are computed
// against now.
func runList(ctx context.Context, api recordapi.API, output *cli.JSONOutput, out io.Writer, now time.Time) error {
	records, err := api.ListRecords(ctx)
	if err != nil {
		return err
	}
	if done, err := output.EmitJSON(out, records); done {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No records.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 2, 0, 3, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tNUMBER\tDATE\tAGE")
	for _, entry := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			entry.ID, entry.Name, entry.Number, entry.Date, relativeAge(entry.Date, now))
	}
	return writer.Flush()
}

func relativeAge(date record.Date, now time.Time) string {
	if date.IsZero() {
		return "-"
	}
	return humanize.RelTime(date.Time(), now, "ago", "from now")
}
