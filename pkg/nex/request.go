package nex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gilliginsisland/nexd/internal/netutil"
)

// ErrNoRequest is returned when a client goes away before sending a complete
// request line.
var ErrNoRequest = errors.New("no reqline?")

// ReadRequest reads one request line from conn and strips its terminator.
func ReadRequest(conn *netutil.BuffConn) (string, error) {
	line, err := conn.ReadLine()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoRequest, err)
	}
	return Chomp(line), nil
}

// Chomp removes one trailing "\r\n", "\n" or "\r".
func Chomp(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return strings.TrimSuffix(s, "\r")
}
