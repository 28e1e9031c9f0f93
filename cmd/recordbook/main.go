// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// recordbook is the user-facing CLI for the record service: an
// interactive viewer plus list and show commands for scripts.
package main

import (
	"os"

	"github.com/recordbook/recordbook/cmd/recordbook/commands"
	"github.com/recordbook/recordbook/lib/process"
)

func main() {
	// Commands that print their own output return an ExitError with
	// the desired exit code; Fatal skips the "error:" line for those.
	if err := commands.Root().Execute(os.Args[1:]); err != nil {
		process.Fatal(err)
	}
}
