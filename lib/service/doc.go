// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the socket transport for Recordbook
// services: a CBOR request-response server ([SocketServer]) and the
// matching client ([ServiceClient]).
//
// The protocol is one request per connection. The client writes a
// single CBOR map containing an "action" field plus action-specific
// fields; the server routes on "action", runs the registered
// [ActionFunc], and writes a [Response] envelope before closing:
//
//	{ok: true, data: <cbor>}      success, data omitted when nil
//	{ok: false, error: "..."}     failure
//
// Handlers decode their own request fields from the raw CBOR, so the
// envelope stays agnostic of every action's schema. Typed clients
// (e.g., recordapi.Client) wrap [ServiceClient.Call] with one method
// per action.
//
// Each request gets a sequence number that appears on the server's log
// lines for it. Handlers add their own fields with [Annotate];
// malformed requests are logged at debug level in CBOR diagnostic
// notation. [SocketServer.Stats] counts served and failed requests.
package service
