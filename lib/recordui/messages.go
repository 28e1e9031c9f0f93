// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"github.com/recordbook/recordbook/lib/schema/record"
)

// Fetch results carry a pointer to the module that issued the call,
// so that two viewers sharing a program never consume each other's
// results.

// recordsLoadedMsg delivers the result of ListRecords.
type recordsLoadedMsg struct {
	owner   *ListModule
	records []record.Record
	err     error
}

// detailFetchedMsg delivers a GetRecord result to the detail module.
type detailFetchedMsg struct {
	owner  *DetailModule
	id     string
	record record.Record
	err    error
}

// editFetchedMsg delivers a GetRecord result to the edit module.
type editFetchedMsg struct {
	owner  *EditModule
	id     string
	record record.Record
	err    error
}

// recordSavedMsg reports the outcome of UpdateRecord. On success the
// App shows the save acknowledgment.
type recordSavedMsg struct {
	owner  *EditModule
	record record.Record
	err    error
}
