package netutil

import (
	"bufio"
	"errors"
	"io"
	"net"
)

var _ net.Conn = (*BuffConn)(nil)

// ErrNoTerminator is returned by ReadLine when the peer closes its side
// before sending a newline.
var ErrNoTerminator = errors.New("connection closed before end of line")

// BuffConn is a net.Conn wrapper with buffered reads and writes.
type BuffConn struct {
	net.Conn
	*bufio.ReadWriter
}

// NewBuffConn wraps a net.Conn with buffered read and write.
func NewBuffConn(conn net.Conn) *BuffConn {
	return &BuffConn{
		Conn: conn,
		ReadWriter: bufio.NewReadWriter(
			bufio.NewReader(conn),
			bufio.NewWriter(conn),
		),
	}
}

// Read reads from the buffered reader.
func (b *BuffConn) Read(p []byte) (int, error) {
	return b.ReadWriter.Read(p)
}

// Write writes to the buffered writer and flushes immediately.
func (b *BuffConn) Write(p []byte) (int, error) {
	n, err := b.ReadWriter.Write(p)
	if err == nil {
		err = b.Flush()
	}
	return n, err
}

// ReadLine reads up to and including the next '\n'. A line cut short by EOF
// is not a line: it is discarded and ErrNoTerminator is returned.
func (b *BuffConn) ReadLine() (string, error) {
	line, err := b.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		return "", ErrNoTerminator
	default:
		return "", err
	}
}
