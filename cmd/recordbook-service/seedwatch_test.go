// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/testutil"
)

func TestChangedRecords(t *testing.T) {
	acme := record.Record{ID: "1", Name: "Acme", Number: "A-1"}
	globex := record.Record{ID: "2", Name: "Globex"}
	previous := snapshotByID([]record.Record{acme, globex})

	renamed := acme
	renamed.Name = "Acme Corp"
	initech := record.Record{ID: "3", Name: "Initech"}

	changed := changedRecords(previous, []record.Record{renamed, globex, initech})
	if len(changed) != 2 || changed[0] != renamed || changed[1] != initech {
		t.Errorf("changedRecords = %+v, want renamed Acme then Initech", changed)
	}

	if changed := changedRecords(previous, []record.Record{acme, globex}); len(changed) != 0 {
		t.Errorf("unchanged file produced %+v", changed)
	}
}

// inotifyEvent builds one raw inotify event with a null-padded name.
func inotifyEvent(name string, padding int) []byte {
	nameBytes := append([]byte(name), make([]byte, padding)...)
	event := make([]byte, unix.SizeofInotifyEvent+len(nameBytes))
	binary.NativeEndian.PutUint32(event[12:16], uint32(len(nameBytes)))
	copy(event[unix.SizeofInotifyEvent:], nameBytes)
	return event
}

func TestInotifyNamesFile(t *testing.T) {
	buffer := append(inotifyEvent("other.jsonc", 5), inotifyEvent("seed.jsonc", 6)...)
	if !inotifyNamesFile(buffer, "seed.jsonc") {
		t.Error("second event not matched")
	}
	if inotifyNamesFile(buffer, "seed") {
		t.Error("prefix matched")
	}
	if inotifyNamesFile(buffer[:10], "seed.jsonc") {
		t.Error("truncated buffer matched")
	}
}

func TestSeedWatchReappliesChanges(t *testing.T) {
	store, err := recordstore.Open(recordstore.Config{Path: filepath.Join(t.TempDir(), "records.db")})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	path := writeSeed(t, `[{"id": "1", "name": "Acme"}]`)
	seeded, err := seedStore(context.Background(), store, path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	applied := make(chan int, 4)
	done, err := startSeedWatch(ctx, &seedWatcher{
		store:   store,
		path:    path,
		logger:  slog.New(slog.DiscardHandler),
		applied: func(count int) { applied <- count },
	}, seeded)
	if err != nil {
		t.Fatalf("startSeedWatch: %v", err)
	}

	rewritten := `[
  {"id": "1", "name": "Acme Corp"},
  {"id": "2", "name": "Globex"},
]`
	if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
		t.Fatal(err)
	}
	if count := testutil.RequireReceive(t, applied, 5*time.Second, "seed file was not re-applied"); count != 2 {
		t.Errorf("re-apply wrote %d records, want 2", count)
	}

	got, err := store.Get(context.Background(), "1")
	if err != nil || got.Name != "Acme Corp" {
		t.Errorf("Get(1) = %+v, %v; want renamed record", got, err)
	}
	if total, _ := store.Count(context.Background()); total != 2 {
		t.Errorf("store holds %d records, want 2", total)
	}

	cancel()
	testutil.RequireClosed(t, done, 5*time.Second, "watch loop did not stop")
}
