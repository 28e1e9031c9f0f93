// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Recordbook's standard CBOR encoding
// configuration for the record service socket protocol.
//
// JSON is used only at the edges (seed files, `recordbook list --json`).
// Everything that crosses the service socket is CBOR. This package
// holds the shared encoding and decoding modes so the service and
// every client encode identically. The encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (sockets):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tags
//
// A `cbor` tag marks a type that is only ever CBOR (socket envelopes,
// request bodies). A `json` tag marks a type that is both JSON and
// CBOR; fxamacker/cbor falls back to `json` tags when `cbor` tags are
// absent. [record.Record] uses `json` tags because it appears in seed
// files and CLI output as well as on the socket.
package codec
