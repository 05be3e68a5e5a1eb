package flagutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOpts struct {
	Root    Path     `short:"d" long:"docroot"`
	Level   LogLevel `short:"v" long:"verbosity"`
	Timeout Duration `long:"timeout"`
}

func TestParseFlags(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	var opts testOpts
	_, err = flags.NewParser(&opts, flags.None).ParseArgs([]string{
		"-d", "~/www", "--verbosity", "debug", "--timeout", "1m30s",
	})
	require.NoError(t, err)

	assert.Equal(t, Path(filepath.Join(home, "www")), opts.Root)
	assert.Equal(t, slog.LevelDebug, opts.Level.Level)
	assert.Equal(t, 90*time.Second, opts.Timeout.Duration)
}

func TestParseFlagsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--verbosity", "loud"},
		{"--timeout", "soon"},
		{"--timeout", "-1s"},
	} {
		var opts testOpts
		_, err := flags.NewParser(&opts, flags.None).ParseArgs(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestPathExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := map[string]string{
		"~":         home,
		"~/docroot": home + "/docroot",
		"./docroot": "./docroot",
		"~other/x":  "~other/x",
		"/srv/nex":  "/srv/nex",
	}
	for in, want := range tests {
		var p Path
		require.NoError(t, p.UnmarshalText([]byte(in)))
		assert.Equal(t, want, p.String(), in)
	}
}

func TestPathAbs(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	abs, err := Path("./docroot").Abs()
	require.NoError(t, err)
	assert.Equal(t, Path(filepath.Join(wd, "docroot")), abs)
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, 250*time.Millisecond, d.Duration)

	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(b))
}
