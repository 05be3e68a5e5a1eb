package netutil

import (
	"context"
	"fmt"
	"net"
	"strconv"

	xnetutil "golang.org/x/net/netutil"
)

// Listen opens a listener that holds at most one accepted connection at a
// time. Accept blocks until the previously accepted connection is closed, so
// further clients wait in the kernel backlog.
func Listen(ctx context.Context, network, address string) (net.Listener, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, network, address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return xnetutil.LimitListener(l, 1), nil
}

// Port reports the port a listener is bound to.
func Port(l net.Listener) (int, error) {
	addr := l.Addr().String()
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("unexpected address format: %q", addr)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number %q: %w", portStr, err)
	}

	return port, nil
}
