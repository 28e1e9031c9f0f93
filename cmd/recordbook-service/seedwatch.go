// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/schema/record"
)

// seedDebounce coalesces editors that write a file several times in
// quick succession into one re-read.
const seedDebounce = 50 * time.Millisecond

// seedWatcher re-applies the seed file when it is rewritten. Records
// that disappear from the file stay in the store: seeding only ever
// upserts.
type seedWatcher struct {
	store    *recordstore.Store
	path     string
	filename string
	logger   *slog.Logger
	previous map[string]record.Record

	// applied, when set, is called after each re-apply with the number
	// of records written.
	applied func(count int)
}

// startSeedWatch sets up an inotify watch on the seed file's directory
// and runs the watch loop until ctx is cancelled. initial is the
// snapshot already applied at startup. The returned channel is closed
// when the loop exits.
//
// The directory is watched rather than the file so that editors which
// write a temporary file and rename it over the original are seen.
func startSeedWatch(ctx context.Context, watcher *seedWatcher, initial []record.Record) (<-chan struct{}, error) {
	absolutePath, err := filepath.Abs(watcher.path)
	if err != nil {
		return nil, err
	}
	watcher.path = absolutePath
	watcher.filename = filepath.Base(absolutePath)
	watcher.previous = snapshotByID(initial)

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify init: %w", err)
	}
	if _, err := unix.InotifyAddWatch(fd, filepath.Dir(absolutePath), unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absolutePath), err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer unix.Close(fd)
		watcher.loop(ctx, fd)
	}()
	return done, nil
}

// loop polls the inotify descriptor with a short timeout so that
// cancellation is noticed promptly.
func (watcher *seedWatcher) loop(ctx context.Context, fd int) {
	buffer := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			watcher.logger.Error("seed watch stopped", "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			watcher.logger.Error("seed watch stopped", "error", err)
			return
		}
		if !inotifyNamesFile(buffer[:bytesRead], watcher.filename) {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(seedDebounce):
		}
		drainInotify(fd, buffer)

		watcher.reapply(ctx)
	}
}

// reapply reads the seed file and writes the records that are new or
// changed since the last snapshot. A file that fails to parse is
// skipped; the write that completes it triggers another event.
func (watcher *seedWatcher) reapply(ctx context.Context) {
	current, err := loadSeedFile(watcher.path)
	if err != nil {
		watcher.logger.Warn("seed file not re-applied", "path", watcher.path, "error", err)
		return
	}

	changed := changedRecords(watcher.previous, current)
	if len(changed) > 0 {
		if err := watcher.store.Put(ctx, changed...); err != nil {
			watcher.logger.Error("seed file re-apply failed", "path", watcher.path, "error", err)
			return
		}
		watcher.logger.Info("seed file re-applied", "path", watcher.path, "records", len(changed))
	}
	watcher.previous = snapshotByID(current)
	if watcher.applied != nil {
		watcher.applied(len(changed))
	}
}

func snapshotByID(records []record.Record) map[string]record.Record {
	snapshot := make(map[string]record.Record, len(records))
	for _, entry := range records {
		snapshot[entry.ID] = entry
	}
	return snapshot
}

// changedRecords returns the entries of current that are absent from
// previous or differ from it, in file order.
func changedRecords(previous map[string]record.Record, current []record.Record) []record.Record {
	var changed []record.Record
	for _, entry := range current {
		if old, exists := previous[entry.ID]; !exists || old != entry {
			changed = append(changed, entry)
		}
	}
	return changed
}

// inotifyNamesFile reports whether any event in buffer names
// filename. Event layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded
//	};
func inotifyNamesFile(buffer []byte, filename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}
		if nameLength > 0 {
			name := buffer[offset+unix.SizeofInotifyEvent : offset+eventSize]
			if nullTerminated(name) == filename {
				return true
			}
		}
		offset += eventSize
	}
	return false
}

func nullTerminated(data []byte) string {
	for i, b := range data {
		if b == 0 {
			return string(data[:i])
		}
	}
	return string(data)
}

// drainInotify discards queued events. The descriptor is non-blocking,
// so the first EAGAIN ends the drain.
func drainInotify(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
