// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package recordstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/recordbook/recordbook/lib/schema/record"
	"github.com/recordbook/recordbook/lib/sqlitepool"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// ErrMissingID is returned when a write names no record.
var ErrMissingID = errors.New("record id is required")

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id       TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL DEFAULT '',
	number   TEXT NOT NULL DEFAULT '',
	date     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS records_position ON records (position);
`

// Store is a SQLite-backed record store. It is safe for concurrent
// use; every call borrows its own connection from the pool.
type Store struct {
	pool   *sqlitepool.Pool
	logger *slog.Logger
}

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the database file. The parent directory must exist.
	Path string

	// PoolSize is the number of pooled connections. Zero uses the
	// pool default.
	PoolSize int

	// Logger receives operational messages. Nil discards them.
	Logger *slog.Logger
}

// Open opens (creating if needed) the record database at cfg.Path.
func Open(cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     cfg.Path,
		PoolSize: cfg.PoolSize,
		Logger:   logger,
		OnConnect: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteScript(conn, schema, nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("record store: %w", err)
	}

	return &Store{pool: pool, logger: logger}, nil
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	return s.pool.Close()
}

// List returns every record in insertion order. An empty store
// returns an empty, non-nil slice.
func (s *Store) List(ctx context.Context) ([]record.Record, error) {
	records := []record.Record{}
	err := s.pool.With(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn,
			"SELECT id, name, number, date FROM records ORDER BY position, id",
			&sqlitex.ExecOptions{
				ResultFunc: func(stmt *sqlite.Stmt) error {
					entry, err := scanRecord(stmt)
					if err != nil {
						return err
					}
					records = append(records, entry)
					return nil
				},
			})
	})
	if err != nil {
		return nil, fmt.Errorf("record store: list: %w", err)
	}
	return records, nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (record.Record, error) {
	var (
		found  bool
		result record.Record
	)
	err := s.pool.With(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn,
			"SELECT id, name, number, date FROM records WHERE id = ?",
			&sqlitex.ExecOptions{
				Args: []any{id},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					entry, err := scanRecord(stmt)
					if err != nil {
						return err
					}
					result = entry
					found = true
					return nil
				},
			})
	})
	if err != nil {
		return record.Record{}, fmt.Errorf("record store: get %q: %w", id, err)
	}
	if !found {
		return record.Record{}, fmt.Errorf("record store: get %q: %w", id, ErrNotFound)
	}
	return result, nil
}

// Update overwrites the name, number, and date of an existing record.
// The record's position is unchanged. Returns ErrNotFound when no
// record has entry.ID.
func (s *Store) Update(ctx context.Context, entry record.Record) error {
	if entry.ID == "" {
		return fmt.Errorf("record store: update: %w", ErrMissingID)
	}

	err := s.pool.With(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn,
			"UPDATE records SET name = ?, number = ?, date = ? WHERE id = ?",
			&sqlitex.ExecOptions{
				Args: []any{entry.Name, entry.Number, entry.Date.String(), entry.ID},
			})
		if err != nil {
			return err
		}
		if conn.Changes() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record store: update %q: %w", entry.ID, err)
	}

	s.logger.Debug("record updated", "id", entry.ID)
	return nil
}

// Put inserts entries that do not exist yet and updates those that
// do, in a single transaction. New records are appended after all
// existing ones, in argument order.
func (s *Store) Put(ctx context.Context, entries ...record.Record) error {
	for _, entry := range entries {
		if entry.ID == "" {
			return fmt.Errorf("record store: put: %w", ErrMissingID)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	err := s.pool.With(ctx, func(conn *sqlite.Conn) (err error) {
		endTransaction, err := sqlitex.ImmediateTransaction(conn)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer endTransaction(&err)

		for _, entry := range entries {
			err = sqlitex.Execute(conn, `
				INSERT INTO records (id, position, name, number, date)
				VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM records), ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET
					name = excluded.name,
					number = excluded.number,
					date = excluded.date`,
				&sqlitex.ExecOptions{
					Args: []any{entry.ID, entry.Name, entry.Number, entry.Date.String()},
				})
			if err != nil {
				return fmt.Errorf("upsert %q: %w", entry.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record store: put: %w", err)
	}

	s.logger.Debug("records stored", "count", len(entries))
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.pool.With(ctx, func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, "SELECT COUNT(*) FROM records", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt(0)
				return nil
			},
		})
	})
	if err != nil {
		return 0, fmt.Errorf("record store: count: %w", err)
	}
	return count, nil
}

func scanRecord(stmt *sqlite.Stmt) (record.Record, error) {
	date, err := record.ParseDate(stmt.ColumnText(3))
	if err != nil {
		return record.Record{}, fmt.Errorf("record %q: %w", stmt.ColumnText(0), err)
	}
	return record.Record{
		ID:     stmt.ColumnText(0),
		Name:   stmt.ColumnText(1),
		Number: stmt.ColumnText(2),
		Date:   date,
	}, nil
}
