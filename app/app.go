// Package app wires configuration, the listening socket and signal handling
// around the nex connection loop.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/gilliginsisland/nexd/internal/netutil"
	"github.com/gilliginsisland/nexd/internal/stdio"
)

var banner = color.New(color.FgCyan)

// Run checks the document root, listens on the configured port and serves
// until SIGINT or SIGTERM arrives or ctx is done. Nothing is opened when the
// preflight check fails.
func Run(ctx context.Context, c *Config, out io.Writer) error {
	if err := c.Preflight(); err != nil {
		return err
	}

	l, err := netutil.Listen(ctx, "tcp", fmt.Sprintf(":%d", c.Port))
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	return Serve(ctx, c, l, sigs, out)
}

// Serve runs the connection loop on l until a signal is received on sigs or
// ctx is done. It takes ownership of l.
func Serve(ctx context.Context, c *Config, l net.Listener, sigs <-chan os.Signal, out io.Writer) error {
	defer l.Close()

	port, err := netutil.Port(l)
	if err != nil {
		return err
	}
	banner.Fprintf(out, "-- nexd listening on port %d --\n", port)
	banner.Fprintf(out, "-- Serving files from %s --\n", c.Docroot)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return c.Server().Serve(ctx, l)
	})

	g.Go(func() error {
		select {
		case sig := <-sigs:
			banner.Fprintf(out, "\n-- %s received, quitting. --\n", signalName(sig))
			slog.Debug("shutting down", slog.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	return g.Wait()
}

// RunStdio answers the single request arriving on conn, as when started by
// inetd with the client socket on standard input and output. Nothing is
// announced since the output stream belongs to the client.
func RunStdio(ctx context.Context, c *Config, conn net.Conn) error {
	if err := c.Preflight(); err != nil {
		return err
	}
	return c.Server().Serve(ctx, stdio.NewListener(conn))
}
