// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the
// recordbook binaries.
//
// Release builds inject the package variables with -ldflags -X:
//
//	go build -ldflags "-X github.com/recordbook/recordbook/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Plain go build and go install binaries carry a VCS stamp instead,
// which [Current] reads when the variables are empty. [Print] writes
// the --version output.
package version
