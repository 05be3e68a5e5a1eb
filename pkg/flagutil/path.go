package flagutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Path is a filesystem path with a leading "~" expanded to the user's home.
type Path string

var _ flags.Unmarshaler = (*Path)(nil)

// UnmarshalText expands the path. It is also what config files and the
// environment decode through.
func (p *Path) UnmarshalText(text []byte) error {
	path, err := expandUser(string(text))
	if err != nil {
		return fmt.Errorf("error parsing path: %w", err)
	}
	*p = Path(path)
	return nil
}

// UnmarshalFlag calls UnmarshalText for go-flags compatibility.
func (p *Path) UnmarshalFlag(value string) error {
	return p.UnmarshalText([]byte(value))
}

func (p Path) String() string {
	return string(p)
}

// Abs returns the absolute form of p.
func (p Path) Abs() (Path, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", string(p), err)
	}
	return Path(abs), nil
}

// expandUser expands a leading "~" to the current user's home directory.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %w", err)
	}
	return home + path[1:], nil
}
