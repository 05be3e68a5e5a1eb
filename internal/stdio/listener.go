package stdio

import (
	"net"
	"sync"
)

var _ net.Listener = (*Listener)(nil)

// Listener hands out one connection and then reports net.ErrClosed.
type Listener struct {
	mu   sync.Mutex
	conn net.Conn
}

// NewListener returns a Listener whose only connection is conn.
func NewListener(conn net.Conn) *Listener {
	return &Listener{conn: conn}
}

func (l *Listener) Accept() (net.Conn, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return nil, net.ErrClosed
	}
	c := l.conn
	l.conn = nil
	return c, nil
}

// Close discards the connection if it has not been accepted yet.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = nil
	return nil
}

func (l *Listener) Addr() net.Addr {
	return Addr{}
}
