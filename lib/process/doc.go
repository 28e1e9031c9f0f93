// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for the recordbook
// service binary: reporting an error that happened before (or
// instead of) the structured logger, and exiting with the right code.
package process
