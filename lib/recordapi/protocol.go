// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordapi

import (
	"errors"

	"github.com/recordbook/recordbook/lib/schema/record"
)

// Socket actions served by the record service.
const (
	ActionListRecords  = "list-records"
	ActionGetRecord    = "get-record"
	ActionUpdateRecord = "update-record"
)

// ErrNotFound is returned when the service has no record with the
// requested ID. Its message is also the wire error string the service
// sends for that case.
var ErrNotFound = errors.New("record not found")

// GetRecordRequest is the body of a get-record request.
type GetRecordRequest struct {
	ID string `cbor:"id"`
}

// UpdateRecordRequest is the body of an update-record request. The
// record's ID selects the row; the other fields replace its values.
type UpdateRecordRequest struct {
	Record record.Record `cbor:"record"`
}
