// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Transient("cannot reach the record service").
		WithHint("Start recordbook-service or pass --socket.")

	want := "cannot reach the record service\n\nStart recordbook-service or pass --socket."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add a blank line to the message")
	}
}

func TestToolError_UnwrapAndCategory(t *testing.T) {
	sentinel := errors.New("record not found")
	inner := NotFound("record %q: %w", "r-9", sentinel)
	wrapped := fmt.Errorf("show failed: %w", inner)

	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is should reach the wrapped sentinel")
	}
	if CategoryOf(wrapped) != CategoryNotFound {
		t.Errorf("CategoryOf() = %q, want %q", CategoryOf(wrapped), CategoryNotFound)
	}
	if CategoryOf(errors.New("plain")) != CategoryInternal {
		t.Error("plain errors should be internal")
	}
}

func TestToolError_AllCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
	}{
		{"Validation", Validation("bad"), CategoryValidation},
		{"NotFound", NotFound("missing"), CategoryNotFound},
		{"Transient", Transient("timeout"), CategoryTransient},
		{"Internal", Internal("bug"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
			if hinted := test.err.WithHint("try again"); hinted != test.err || hinted.Hint != "try again" {
				t.Error("WithHint should set the hint and return the receiver")
			}
		})
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 3}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 3 {
		t.Fatalf("ExitError does not report code 3")
	}
	if err.Error() != "exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}
