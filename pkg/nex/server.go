package nex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/gilliginsisland/nexd/internal/netutil"
)

// Server answers Nex requests one connection at a time.
type Server struct {
	Resolver   Resolver
	Dispatcher Dispatcher
	// Timeout bounds the whole exchange with a client. Zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Serve accepts connections from l and handles each one to completion before
// accepting the next. It returns nil once ctx is cancelled or l is closed;
// cancellation closes both the listener and any connection in flight.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() { l.Close() })
	defer stop()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		s.ServeConn(ctx, conn)

		if ctx.Err() != nil {
			return nil
		}
	}
}

// ServeConn runs a single request/response exchange and closes conn.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	log := s.logger()
	remote := slog.String("remote", conn.RemoteAddr().String())
	log.DebugContext(ctx, "connection accepted", remote)
	defer func() {
		conn.Close()
		log.DebugContext(ctx, "connection closed", remote)
	}()

	if s.Timeout > 0 {
		conn.SetDeadline(time.Now().Add(s.Timeout))
	}

	bc := netutil.NewBuffConn(conn)
	req, err := ReadRequest(bc)
	if err != nil {
		log.ErrorContext(ctx, "ERROR", slog.Any("error", err))
		return
	}
	log.InfoContext(ctx, "REQUEST", slog.String("request", req))

	target := s.Resolver.Resolve(req)
	log.DebugContext(ctx, "request resolved",
		slog.String("kind", target.Kind.String()),
		slog.String("path", target.Path),
	)

	body, err := s.Dispatcher.Dispatch(target)
	if err != nil {
		log.ErrorContext(ctx, "ERROR", slog.Any("error", err))
		return
	}

	if _, err := bc.Write(body); err != nil && !errors.Is(err, net.ErrClosed) {
		log.ErrorContext(ctx, "ERROR", slog.Any("error", fmt.Errorf("failed to write response: %w", err)))
	}
}
