// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// ExitCode returns the code a failed run should exit with: the
// error's own ExitCode() when it has one, and 1 otherwise. A nil
// error exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	return 1
}

// Report writes "error: err" to w unless err carries its own exit
// code, in which case the command has already printed what it needed.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if _, ok := err.(interface{ ExitCode() int }); ok {
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// Fatal reports err on stderr and exits with [ExitCode].
func Fatal(err error) {
	Report(os.Stderr, err)
	os.Exit(ExitCode(err))
}
