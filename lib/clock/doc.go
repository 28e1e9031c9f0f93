// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for
// testability.
//
// Production code accepts a Clock instead of calling time.Now or
// time.After directly. In production, Real() provides the standard
// library behavior. In tests, Fake() provides a clock that moves only
// when Advance or Set is called, so relative ages ("2 weeks ago") and
// uptimes come out the same on every run:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	s := &Service{clock: c}
//	c.Advance(5 * time.Second)
package clock
