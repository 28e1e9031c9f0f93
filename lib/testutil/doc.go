// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Recordbook
// packages.
//
// [SocketDir] creates a short-named temporary directory in /tmp for
// Unix domain sockets, which have a 108-byte path limit that deeply
// nested t.TempDir() paths can exceed.
//
// [RequireReceive], [RequireSend], and [RequireClosed] wrap the select
// with a time.After fallback so that individual tests never hang on a
// channel that is not going to deliver.
//
// [UniqueID] generates monotonically increasing identifiers for test
// records.
//
// All helpers call t.Fatalf on failure rather than returning errors.
package testutil
