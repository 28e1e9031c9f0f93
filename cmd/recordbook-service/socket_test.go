// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/recordbook/recordbook/lib/clock"
	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/service"
	"github.com/recordbook/recordbook/lib/testutil"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seedRecords() []record.Record {
	return []record.Record{
		{ID: "1", Name: "Acme", Number: "A-1", Date: record.NewDate(2024, time.January, 5)},
		{ID: "2", Name: "Globex", Number: "G-7", Date: record.NewDate(2023, time.March, 14)},
	}
}

type testService struct {
	store      *recordstore.Store
	clock      *clock.FakeClock
	socketPath string
	client     *recordapi.Client
	raw        *service.ServiceClient
}

// startTestService serves a fresh store holding records on a temporary
// socket until the test ends.
func startTestService(t *testing.T, records ...record.Record) *testService {
	t.Helper()

	store, err := recordstore.Open(recordstore.Config{Path: filepath.Join(t.TempDir(), "records.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Put(context.Background(), records...); err != nil {
		t.Fatalf("Put: %v", err)
	}

	fake := clock.Fake(testEpoch)
	logger := slog.New(slog.DiscardHandler)
	socketPath := testutil.SocketPath(t, "records.sock")

	server := service.NewSocketServer(socketPath, logger)
	newRecordService(store, fake, logger).registerActions(server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		testutil.RequireReceive(t, done, 5*time.Second, "Serve did not return")
	})
	waitForSocket(t, socketPath)

	return &testService{
		store:      store,
		clock:      fake,
		socketPath: socketPath,
		client:     recordapi.NewClient(socketPath),
		raw:        service.NewServiceClient(socketPath),
	}
}

func waitForSocket(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(path); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("socket %s never appeared", path)
		}
		runtime.Gosched()
	}
}

func TestListRecordsInStoreOrder(t *testing.T) {
	ts := startTestService(t, seedRecords()...)

	records, err := ts.client.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	want := seedRecords()
	if len(records) != len(want) || records[0] != want[0] || records[1] != want[1] {
		t.Fatalf("ListRecords = %+v, want %+v", records, want)
	}
}

func TestListRecordsEmpty(t *testing.T) {
	ts := startTestService(t)

	records, err := ts.client.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("ListRecords = %+v, want none", records)
	}
}

func TestGetRecord(t *testing.T) {
	ts := startTestService(t, seedRecords()...)

	got, err := ts.client.GetRecord(context.Background(), "2")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got != seedRecords()[1] {
		t.Errorf("GetRecord = %+v, want %+v", got, seedRecords()[1])
	}

	_, err = ts.client.GetRecord(context.Background(), "missing")
	if !errors.Is(err, recordapi.ErrNotFound) {
		t.Errorf("GetRecord(missing) = %v, want ErrNotFound", err)
	}
}

func TestUpdateRecord(t *testing.T) {
	ts := startTestService(t, seedRecords()...)
	ctx := context.Background()

	updated := record.Record{ID: "1", Name: "Acme Corp", Number: "A-2", Date: record.NewDate(2025, time.June, 30)}
	if err := ts.client.UpdateRecord(ctx, updated); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	got, err := ts.client.GetRecord(ctx, "1")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if got != updated {
		t.Errorf("after update GetRecord = %+v, want %+v", got, updated)
	}

	// Updating keeps the record's place in the list.
	records, err := ts.client.ListRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].ID != "1" {
		t.Errorf("updated record moved: order %q, %q", records[0].ID, records[1].ID)
	}
}

func TestUpdateRecordZeroDate(t *testing.T) {
	ts := startTestService(t, seedRecords()...)
	ctx := context.Background()

	if err := ts.client.UpdateRecord(ctx, record.Record{ID: "2", Name: "Globex"}); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}
	got, err := ts.client.GetRecord(ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Date.IsZero() || got.Number != "" {
		t.Errorf("GetRecord = %+v, want cleared number and zero date", got)
	}
}

func TestUpdateRecordErrors(t *testing.T) {
	ts := startTestService(t, seedRecords()...)
	ctx := context.Background()

	err := ts.client.UpdateRecord(ctx, record.Record{ID: "404", Name: "Nobody"})
	if !errors.Is(err, recordapi.ErrNotFound) {
		t.Errorf("UpdateRecord(unknown) = %v, want ErrNotFound", err)
	}

	err = ts.client.UpdateRecord(ctx, record.Record{Name: "No ID"})
	var serviceErr *service.ServiceError
	if !errors.As(err, &serviceErr) || serviceErr.Message != errMissingRecordID.Error() {
		t.Errorf("UpdateRecord(no id) = %v, want %q", err, errMissingRecordID)
	}

	if count, _ := ts.store.Count(ctx); count != 2 {
		t.Errorf("failed updates changed the record count to %d", count)
	}
}

func TestGetRecordMissingID(t *testing.T) {
	ts := startTestService(t, seedRecords()...)

	err := ts.raw.Call(context.Background(), recordapi.ActionGetRecord, nil, nil)
	var serviceErr *service.ServiceError
	if !errors.As(err, &serviceErr) || !strings.Contains(serviceErr.Message, "missing required field: id") {
		t.Fatalf("get-record without id = %v", err)
	}
}

func TestStatus(t *testing.T) {
	ts := startTestService(t, seedRecords()...)
	ts.clock.Advance(90 * time.Second)

	var status statusResponse
	if err := ts.raw.Call(context.Background(), "status", nil, &status); err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.UptimeSeconds != 90 {
		t.Errorf("UptimeSeconds = %v, want 90", status.UptimeSeconds)
	}
	if status.Records != 2 {
		t.Errorf("Records = %d, want 2", status.Records)
	}

	// The status call itself is still in flight when its counters are
	// read, so only earlier requests show up.
	if _, err := ts.client.GetRecord(context.Background(), "missing"); err == nil {
		t.Fatal("GetRecord(missing) succeeded")
	}
	if err := ts.raw.Call(context.Background(), "status", nil, &status); err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Requests.Served != 1 || status.Requests.Failed != 1 {
		t.Errorf("Requests = %+v, want 1 served and 1 failed", status.Requests)
	}
}

func TestWireError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{recordstore.ErrNotFound, "record not found"},
		{errors.Join(errors.New("record store: get"), recordstore.ErrNotFound), "record not found"},
		{recordstore.ErrMissingID, errMissingRecordID.Error()},
		{errors.New("disk I/O error"), "disk I/O error"},
	}
	for _, test := range tests {
		if got := wireError(test.err).Error(); got != test.want {
			t.Errorf("wireError(%v) = %q, want %q", test.err, got, test.want)
		}
	}
}
