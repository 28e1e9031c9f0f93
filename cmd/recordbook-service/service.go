// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/recordbook/recordbook/lib/clock"
	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/service"
)

// recordStore is the subset of *recordstore.Store the socket handlers
// use.
type recordStore interface {
	List(ctx context.Context) ([]record.Record, error)
	Get(ctx context.Context, id string) (record.Record, error)
	Update(ctx context.Context, entry record.Record) error
	Count(ctx context.Context) (int, error)
}

var _ recordStore = (*recordstore.Store)(nil)

// RecordService holds the state shared by the socket handlers.
type RecordService struct {
	store     recordStore
	clock     clock.Clock
	startedAt time.Time
	logger    *slog.Logger

	// server is set by registerActions; status reports its counters.
	server *service.SocketServer
}

func newRecordService(store recordStore, clk clock.Clock, logger *slog.Logger) *RecordService {
	return &RecordService{
		store:     store,
		clock:     clk,
		startedAt: clk.Now(),
		logger:    logger,
	}
}

// errMissingRecordID is the wire error for an update without an ID.
var errMissingRecordID = errors.New("missing required field: record.id")
