// Package stdio exposes a process's standard input and output as a single
// network connection, for running under inetd or a similar supervisor.
package stdio

import (
	"errors"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// Addr is the address of both ends of a stdio connection.
type Addr struct{}

func (Addr) Network() string { return "stdio" }
func (Addr) String() string  { return "stdio" }

var _ net.Conn = (*Conn)(nil)

// Conn reads from one stream and writes to another.
type Conn struct {
	io.Reader
	io.Writer

	once   sync.Once
	closer io.Closer
}

// NewConn returns a Conn over r and w. Close closes w if it is an io.Closer,
// so the peer sees end of stream.
func NewConn(r io.Reader, w io.Writer) *Conn {
	c := &Conn{Reader: r, Writer: w}
	if wc, ok := w.(io.Closer); ok {
		c.closer = wc
	}
	return c
}

func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		if c.closer != nil {
			err = c.closer.Close()
		}
	})
	return err
}

func (c *Conn) LocalAddr() net.Addr  { return Addr{} }
func (c *Conn) RemoteAddr() net.Addr { return Addr{} }

// Deadlines are applied when the underlying streams support them, as pipes
// and sockets handed over by a supervisor do.
func (c *Conn) SetDeadline(t time.Time) error {
	if err := c.SetReadDeadline(t); err != nil {
		return err
	}
	return c.SetWriteDeadline(t)
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	if f, ok := c.Reader.(*os.File); ok {
		if err := f.SetReadDeadline(t); err != nil && !errors.Is(err, os.ErrNoDeadline) {
			return err
		}
	}
	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	if f, ok := c.Writer.(*os.File); ok {
		if err := f.SetWriteDeadline(t); err != nil && !errors.Is(err, os.ErrNoDeadline) {
			return err
		}
	}
	return nil
}
