package nex

import (
	"fmt"
	"os"
)

// Dispatcher turns resolved targets into response bodies.
type Dispatcher struct {
	Lister Lister
}

// Dispatch returns the exact bytes to send for t. Errors mean the target
// could not be read after it was classified.
func (d *Dispatcher) Dispatch(t Target) ([]byte, error) {
	switch t.Kind {
	case KindDirectory:
		listing, err := d.Lister.List(t.Path)
		if err != nil {
			return nil, err
		}
		return []byte(listing), nil
	case KindFile:
		b, err := os.ReadFile(t.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", t.Path, err)
		}
		return b, nil
	default:
		return NotFound(t.Request), nil
	}
}

// NotFound is the response for a request that names nothing servable.
func NotFound(request string) []byte {
	return []byte("Sorry, no such resource: " + request + "\n")
}
