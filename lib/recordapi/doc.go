// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordapi defines the record CRUD contract used by the
// viewer and the CLI, and a [Client] that speaks it to the record
// service over its Unix socket.
//
// The [API] interface has exactly three operations: list all records,
// get one by ID, and update one in place. Records are never created or
// deleted through it. The action names and request shapes shared with
// the service live in protocol.go.
package recordapi
