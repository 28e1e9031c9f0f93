// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandLoggerFormat(t *testing.T) {
	var piped bytes.Buffer
	newCommandLogger(&piped, false, false).Info("listed", "records", 3)
	var entry map[string]any
	if err := json.Unmarshal(piped.Bytes(), &entry); err != nil {
		t.Fatalf("piped output is not JSON: %q", piped.String())
	}
	if entry["msg"] != "listed" || entry["records"] != float64(3) {
		t.Errorf("entry = %v", entry)
	}

	var terminal bytes.Buffer
	newCommandLogger(&terminal, true, false).Info("listed", "records", 3)
	if !strings.Contains(terminal.String(), "msg=listed records=3") {
		t.Errorf("terminal output = %q, want text format", terminal.String())
	}
}

func TestCommandLoggerVerbose(t *testing.T) {
	var quiet bytes.Buffer
	newCommandLogger(&quiet, false, false).Debug("calling record service")
	if quiet.Len() != 0 {
		t.Errorf("debug line written without verbose: %q", quiet.String())
	}

	var verbose bytes.Buffer
	newCommandLogger(&verbose, false, true).Debug("calling record service")
	if !strings.Contains(verbose.String(), "calling record service") {
		t.Errorf("verbose logger dropped the debug line: %q", verbose.String())
	}
}

func TestOpenFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	logger, closeLog, err := OpenFileLogger(path)
	if err != nil {
		t.Fatalf("OpenFileLogger: %v", err)
	}
	logger.Debug("record fetched", "id", "1")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"record fetched"`) {
		t.Errorf("log file = %q", data)
	}

	discard, closeDiscard, err := OpenFileLogger("")
	if err != nil || closeDiscard() != nil {
		t.Fatalf("OpenFileLogger(\"\"): %v", err)
	}
	discard.Info("dropped")
}
