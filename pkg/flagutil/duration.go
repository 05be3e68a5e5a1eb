package flagutil

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Duration is a time.Duration written as "30s" or "1m30s" in flags, config
// files and the environment.
type Duration struct {
	time.Duration
}

var _ flags.Unmarshaler = (*Duration)(nil)

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalFlag calls UnmarshalText for go-flags compatibility.
func (d *Duration) UnmarshalFlag(value string) error {
	return d.UnmarshalText([]byte(value))
}
