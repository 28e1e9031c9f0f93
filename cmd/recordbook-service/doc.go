// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// recordbook-service serves records from a SQLite database over a
// CBOR Unix socket. It is the backend behind the recordbook viewer
// and the list and show commands.
//
// Actions:
//   - status: uptime, record count, and request counters
//   - list-records: every record in insertion order
//   - get-record {id}: one record, or "record not found"
//   - update-record {record}: replace a record's name, number, and date
//
// At startup the service optionally upserts records from a JSONC seed
// file (service.seed_file or --seed). Records are only ever created
// this way; the socket API edits existing ones. With --watch-seed the
// file is re-applied whenever it is rewritten.
//
// SIGINT and SIGTERM shut the socket down gracefully: in-flight
// requests complete before the process exits.
package main
