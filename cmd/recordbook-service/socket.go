// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/recordbook/recordbook/lib/codec"
	"github.com/recordbook/recordbook/lib/recordapi"
	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/service"
)

// registerActions registers every socket action on the server.
func (rs *RecordService) registerActions(server *service.SocketServer) {
	rs.server = server
	server.Handle("status", rs.handleStatus)
	server.Handle(recordapi.ActionListRecords, rs.handleListRecords)
	server.Handle(recordapi.ActionGetRecord, rs.handleGetRecord)
	server.Handle(recordapi.ActionUpdateRecord, rs.handleUpdateRecord)
}

// statusResponse is the response to the "status" action.
type statusResponse struct {
	// UptimeSeconds is how long the service has been running.
	UptimeSeconds float64 `cbor:"uptime_seconds"`

	// Records is the number of stored records.
	Records int `cbor:"records"`

	// Requests counts the socket requests answered so far.
	Requests service.Stats `cbor:"requests"`
}

func (rs *RecordService) handleStatus(ctx context.Context, raw []byte) (any, error) {
	count, err := rs.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return statusResponse{
		UptimeSeconds: rs.clock.Now().Sub(rs.startedAt).Seconds(),
		Records:       count,
		Requests:      rs.server.Stats(),
	}, nil
}

func (rs *RecordService) handleListRecords(ctx context.Context, raw []byte) (any, error) {
	return rs.store.List(ctx)
}

func (rs *RecordService) handleGetRecord(ctx context.Context, raw []byte) (any, error) {
	var request recordapi.GetRecordRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if request.ID == "" {
		return nil, errors.New("missing required field: id")
	}
	service.Annotate(ctx, "id", request.ID)

	entry, err := rs.store.Get(ctx, request.ID)
	if err != nil {
		return nil, wireError(err)
	}
	return entry, nil
}

func (rs *RecordService) handleUpdateRecord(ctx context.Context, raw []byte) (any, error) {
	var request recordapi.UpdateRecordRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if request.Record.ID == "" {
		return nil, errMissingRecordID
	}
	service.Annotate(ctx, "id", request.Record.ID)

	if err := rs.store.Update(ctx, request.Record); err != nil {
		return nil, wireError(err)
	}
	rs.logger.Info("record updated", "id", request.Record.ID)
	return nil, nil
}

// wireError replaces store errors whose text clients match on with
// the exact wire form. Everything else passes through.
func wireError(err error) error {
	switch {
	case errors.Is(err, recordstore.ErrNotFound):
		return recordapi.ErrNotFound
	case errors.Is(err, recordstore.ErrMissingID):
		return errMissingRecordID
	}
	return err
}
