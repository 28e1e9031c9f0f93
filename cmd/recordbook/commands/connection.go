// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/recordbook/recordbook/cmd/recordbook/cli"
	"github.com/recordbook/recordbook/lib/config"
	"github.com/recordbook/recordbook/lib/recordapi"
)

// ConnectionParams are the flags every command uses to find the
// record service.
type ConnectionParams struct {
	ConfigPath string `flag:"config,c" desc:"path to recordbook.yaml (default: $RECORDBOOK_CONFIG, then built-in defaults)"`
	SocketPath string `flag:"socket" desc:"record service socket (overrides service.socket_path)"`
}

// CallParams are the flags of commands that make one service call.
type CallParams struct {
	ConnectionParams
	Verbose bool `flag:"verbose,v" desc:"log the service call to stderr"`
}

// loadConfig resolves the configuration and applies the --socket
// override.
func (params *ConnectionParams) loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(params.ConfigPath)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if params.SocketPath != "" {
		cfg.Service.SocketPath = params.SocketPath
	}
	return cfg, nil
}

// callTimeout bounds the list and show commands. The viewer has no
// timeout on its fetches.
const callTimeout = 10 * time.Second

// classifyCallError maps an API error to a categorized CLI error.
func classifyCallError(err error, socketPath string) error {
	switch {
	case errors.Is(err, recordapi.ErrNotFound):
		return cli.NotFound("%w", err)
	case errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ECONNREFUSED):
		return cli.Transient("cannot reach the record service at %s: %w", socketPath, err).
			WithHint("Start recordbook-service, or pass --socket with the path it listens on.")
	case errors.Is(err, context.DeadlineExceeded):
		return cli.Transient("record service did not answer within %s: %w", callTimeout, err)
	}
	return cli.Internal("%w", err)
}

// callService runs call with callTimeout and returns its error
// categorized. The call and its outcome are logged at debug level.
func callService(logger *slog.Logger, socketPath string, call func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	logger.Debug("calling record service", "socket", socketPath)
	started := time.Now()
	if err := call(ctx); err != nil {
		classified := classifyCallError(err, socketPath)
		logger.Debug("record service call failed",
			"category", cli.CategoryOf(classified),
			"error", err,
			"duration", time.Since(started),
		)
		return classified
	}
	logger.Debug("record service call completed", "duration", time.Since(started))
	return nil
}
