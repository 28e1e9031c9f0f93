// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"

	"github.com/recordbook/recordbook/cmd/recordbook/cli"
	"github.com/recordbook/recordbook/lib/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			version.Print(os.Stdout, "recordbook")
			return nil
		},
	}
}
