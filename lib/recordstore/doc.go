// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordstore persists records in SQLite.
//
// Records live in a single table keyed by ID. Each row also carries a
// position assigned on first insert, and [Store.List] orders by it, so
// listing returns records in the order they were created no matter how
// often they are edited afterwards. Dates are stored as ISO day text
// ("2024-01-05"), with the zero date stored as "".
//
// Lookups and updates of an unknown ID return [ErrNotFound].
package recordstore
