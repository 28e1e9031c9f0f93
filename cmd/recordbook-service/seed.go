// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/schema/record"
)

// loadSeedFile reads a JSONC array of records. Comments and trailing
// commas are allowed. Every record needs a unique, non-empty id.
//
//	[
//	  // Imported from the 2024 ledger.
//	  {"id": "1", "name": "Acme", "number": "A-1", "date": "2024-01-05"},
//	]
func loadSeedFile(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var records []record.Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	seen := make(map[string]int, len(records))
	for index, entry := range records {
		if entry.ID == "" {
			return nil, fmt.Errorf("seed file %s: record %d has no id", path, index)
		}
		if previous, ok := seen[entry.ID]; ok {
			return nil, fmt.Errorf("seed file %s: records %d and %d share id %q", path, previous, index, entry.ID)
		}
		seen[entry.ID] = index
	}
	return records, nil
}

// seedStore upserts every record in the seed file into store and
// returns the records applied.
func seedStore(ctx context.Context, store *recordstore.Store, path string) ([]record.Record, error) {
	records, err := loadSeedFile(path)
	if err != nil {
		return nil, err
	}
	if err := store.Put(ctx, records...); err != nil {
		return nil, err
	}
	return records, nil
}
