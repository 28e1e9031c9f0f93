// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package record defines the record entity shared by the record
// service, its socket protocol, and the terminal UI.
//
// A [Record] is keyed by its opaque ID. The UI never creates records;
// it lists them, fetches one at a time by ID, and writes edits back.
// [Date] is a calendar day with no time-of-day or zone. Its text form
// is the ISO day (YYYY-MM-DD), which is what travels over CBOR (via
// the codec's TextMarshaler mode), JSON seed files, and the edit
// form's date input.
//
// This package depends on no other Recordbook packages.
package record
