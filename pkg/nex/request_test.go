package nex

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilliginsisland/nexd/internal/netutil"
)

func TestChomp(t *testing.T) {
	tests := map[string]string{
		"hello.txt\n":   "hello.txt",
		"hello.txt\r\n": "hello.txt",
		"hello.txt\r":   "hello.txt",
		"hello.txt":     "hello.txt",
		"a\n\n":         "a\n",
		"a\r\r\n":       "a\r",
		"\n":            "",
		"":              "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Chomp(in), "Chomp(%q)", in)
	}
}

func TestReadRequest(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	go func() {
		client.Write([]byte("sub/a.txt\r\nignored"))
		client.Close()
	}()

	req, err := ReadRequest(netutil.NewBuffConn(server))
	require.NoError(t, err)
	assert.Equal(t, "sub/a.txt", req)
}

func TestReadRequest_NoTerminator(t *testing.T) {
	for _, sent := range []string{"", "hello.txt"} {
		client, server := net.Pipe()

		go func() {
			if sent != "" {
				client.Write([]byte(sent))
			}
			client.Close()
		}()

		_, err := ReadRequest(netutil.NewBuffConn(server))
		assert.ErrorIs(t, err, ErrNoRequest, "sent %q", sent)
		assert.ErrorIs(t, err, netutil.ErrNoTerminator, "sent %q", sent)
		server.Close()
	}
}
