//go:build !unix

package app

import "os"

func signalName(sig os.Signal) string {
	return sig.String()
}
