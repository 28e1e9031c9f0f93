// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/service"
)

// API is the record CRUD contract. Implementations must be safe to
// call from multiple goroutines: the viewer issues fetches from
// concurrent commands.
type API interface {
	// ListRecords returns every record in service order.
	ListRecords(ctx context.Context) ([]record.Record, error)

	// GetRecord returns the record with the given ID, or an error
	// wrapping ErrNotFound.
	GetRecord(ctx context.Context, id string) (record.Record, error)

	// UpdateRecord replaces the fields of the record with entry.ID.
	UpdateRecord(ctx context.Context, entry record.Record) error
}

// Client implements API against the record service socket.
type Client struct {
	service *service.ServiceClient
}

var _ API = (*Client)(nil)

// NewClient returns a client for the record service listening on
// socketPath. No connection is made until the first call.
func NewClient(socketPath string) *Client {
	return &Client{service: service.NewServiceClient(socketPath)}
}

// ListRecords implements API.
func (c *Client) ListRecords(ctx context.Context) ([]record.Record, error) {
	var records []record.Record
	if err := c.service.Call(ctx, ActionListRecords, nil, &records); err != nil {
		return nil, mapError(err)
	}
	return records, nil
}

// GetRecord implements API.
func (c *Client) GetRecord(ctx context.Context, id string) (record.Record, error) {
	var result record.Record
	err := c.service.Call(ctx, ActionGetRecord, map[string]any{"id": id}, &result)
	if err != nil {
		return record.Record{}, mapError(err)
	}
	return result, nil
}

// UpdateRecord implements API.
func (c *Client) UpdateRecord(ctx context.Context, entry record.Record) error {
	err := c.service.Call(ctx, ActionUpdateRecord, map[string]any{"record": entry}, nil)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// mapError turns the service's not-found reply into ErrNotFound so
// callers can test for it with errors.Is.
func mapError(err error) error {
	var serviceErr *service.ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message == ErrNotFound.Error() {
		return fmt.Errorf("%s: %w", serviceErr.Action, ErrNotFound)
	}
	return err
}
