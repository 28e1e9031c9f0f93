// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/recordbook/recordbook/lib/codec"
)

// ActionFunc handles one action. raw is the whole CBOR request,
// "action" field included; the handler decodes its own fields from it.
// A nil result produces {ok: true} with no data.
type ActionFunc func(ctx context.Context, raw []byte) (any, error)

// Response is the envelope every request is answered with.
type Response struct {
	OK    bool             `cbor:"ok"`
	Error string           `cbor:"error,omitempty"`
	Data  codec.RawMessage `cbor:"data,omitempty"`
}

// Stats counts answered requests since the server was created.
type Stats struct {
	// Served is the number of requests answered with ok.
	Served uint64 `cbor:"served"`

	// Failed is the number answered with an error, malformed
	// requests included.
	Failed uint64 `cbor:"failed"`
}

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 10 * time.Second

	// maxRequestSize bounds one request. An update-record request is a
	// few hundred bytes.
	maxRequestSize = 1 << 20

	// maxDiagnosticBytes caps how much of a malformed request is
	// rendered into the debug log.
	maxDiagnosticBytes = 512
)

// SocketServer answers one CBOR request per Unix socket connection.
// Register actions with Handle before calling Serve.
type SocketServer struct {
	socketPath string
	handlers   map[string]ActionFunc
	logger     *slog.Logger

	sequence atomic.Uint64
	served   atomic.Uint64
	failed   atomic.Uint64
	inFlight sync.WaitGroup
}

// NewSocketServer returns a server for socketPath. A nil logger
// discards output.
func NewSocketServer(socketPath string, logger *slog.Logger) *SocketServer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SocketServer{
		socketPath: socketPath,
		handlers:   make(map[string]ActionFunc),
		logger:     logger,
	}
}

// Handle registers handler for action. Registering an action twice
// panics.
func (s *SocketServer) Handle(action string, handler ActionFunc) {
	if _, exists := s.handlers[action]; exists {
		panic(fmt.Sprintf("service.SocketServer: duplicate handler for action %q", action))
	}
	s.handlers[action] = handler
}

// Stats returns the request counters.
func (s *SocketServer) Stats() Stats {
	return Stats{Served: s.served.Load(), Failed: s.failed.Load()}
}

// Serve listens on the socket and answers requests until ctx is
// cancelled, then waits for in-flight requests. A stale socket file is
// replaced; the socket file is removed on return.
func (s *SocketServer) Serve(ctx context.Context) error {
	listener, err := s.listen()
	if err != nil {
		return err
	}
	defer func() {
		listener.Close()
		os.Remove(s.socketPath)
	}()
	stop := context.AfterFunc(ctx, func() { listener.Close() })
	defer stop()

	s.logger.Info("socket server listening", "path", s.socketPath)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error("accept failed", "error", err)
			continue
		}
		s.inFlight.Go(func() { s.serveConnection(ctx, conn) })
	}
	s.inFlight.Wait()

	stats := s.Stats()
	s.logger.Info("socket server stopped", "path", s.socketPath, "served", stats.Served, "failed", stats.Failed)
	return nil
}

func (s *SocketServer) listen() (net.Listener, error) {
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale socket %s: %w", s.socketPath, err)
	}
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	return listener, nil
}

func (s *SocketServer) serveConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	var raw codec.RawMessage
	err := codec.NewDecoder(io.LimitReader(conn, maxRequestSize)).Decode(&raw)
	if errors.Is(err, io.EOF) {
		// Connected and sent nothing.
		return
	}

	scope := &requestScope{sequence: s.sequence.Add(1)}
	var response Response
	if err != nil {
		s.logger.Debug("unreadable request", scope.attrs("error", err)...)
		response = failure(fmt.Sprintf("invalid request: %v", err))
	} else {
		response = s.dispatch(context.WithValue(ctx, scopeKey{}, scope), raw, scope)
	}

	if response.OK {
		s.served.Add(1)
	} else {
		s.failed.Add(1)
	}

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Debug("writing response failed", scope.attrs("error", err)...)
	}
}

// dispatch routes a decoded request to its handler and builds the
// response.
func (s *SocketServer) dispatch(ctx context.Context, raw codec.RawMessage, scope *requestScope) Response {
	var header struct {
		Action string `cbor:"action"`
	}
	if err := codec.Unmarshal(raw, &header); err != nil {
		s.logger.Debug("malformed request", scope.attrs("error", err, "cbor", diagnose(raw))...)
		return failure(fmt.Sprintf("invalid request: %v", err))
	}
	if header.Action == "" {
		s.logger.Debug("malformed request", scope.attrs("error", "no action", "cbor", diagnose(raw))...)
		return failure("missing required field: action")
	}
	scope.action = header.Action

	handler, exists := s.handlers[header.Action]
	if !exists {
		s.logger.Debug("unknown action", scope.attrs()...)
		return failure(fmt.Sprintf("unknown action %q", header.Action))
	}

	started := time.Now()
	result, err := handler(ctx, []byte(raw))
	elapsed := time.Since(started)
	if err != nil {
		s.logger.Debug("action failed", scope.attrs("error", err, "duration", elapsed)...)
		return failure(err.Error())
	}

	response := Response{OK: true}
	if result != nil {
		data, err := codec.Marshal(result)
		if err != nil {
			s.logger.Error("marshaling response", scope.attrs("error", err)...)
			return failure(fmt.Sprintf("internal: marshaling response: %v", err))
		}
		response.Data = data
	}
	s.logger.Debug("action handled", scope.attrs("duration", elapsed)...)
	return response
}

func failure(message string) Response {
	return Response{OK: false, Error: message}
}

// diagnose renders raw in CBOR diagnostic notation for logs. Input that
// does not parse, including a prefix cut at maxDiagnosticBytes, falls
// back to hex.
func diagnose(raw []byte) string {
	if len(raw) > maxDiagnosticBytes {
		raw = raw[:maxDiagnosticBytes]
	}
	text, err := codec.Diagnose(raw)
	if err != nil {
		return fmt.Sprintf("%x", raw)
	}
	return text
}

type scopeKey struct{}

// requestScope carries the log fields of one request. It is only
// touched from the connection's goroutine.
type requestScope struct {
	sequence uint64
	action   string
	fields   []any
}

// Annotate adds key-value log fields to the request being handled in
// ctx. They appear on the server's log lines for that request, such as
// "action failed". Outside a handler it does nothing.
//
//	service.Annotate(ctx, "id", request.ID)
func Annotate(ctx context.Context, fields ...any) {
	if scope, ok := ctx.Value(scopeKey{}).(*requestScope); ok {
		scope.fields = append(scope.fields, fields...)
	}
}

func (scope *requestScope) attrs(extra ...any) []any {
	attrs := make([]any, 0, 4+len(scope.fields)+len(extra))
	attrs = append(attrs, "request", scope.sequence)
	if scope.action != "" {
		attrs = append(attrs, "action", scope.action)
	}
	attrs = append(attrs, scope.fields...)
	return append(attrs, extra...)
}
