// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "github.com/recordbook/recordbook/cmd/recordbook/cli"

// Root returns the top-level recordbook command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "recordbook",
		Summary: "Browse and edit records",
		Description: `recordbook browses and edits the records held by recordbook-service.

The viewer shows a list, a detail pane, and an edit form under a tab
bar. The list and show commands print records for scripts.`,
		Subcommands: []*cli.Command{
			viewerCommand(),
			listCommand(),
			showCommand(),
			versionCommand(),
		},
	}
}
