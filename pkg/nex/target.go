// Package nex implements the server side of the Nex protocol: a client sends
// one line naming a resource, the server answers with the file contents, a
// directory listing or a not-found line, and closes the connection.
package nex

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind classifies a resolved request.
type Kind int

const (
	KindMissing Kind = iota
	KindDirectory
	KindFile
)

// Target is the result of resolving a request line against a document root.
type Target struct {
	Kind Kind
	// Path is the filesystem path for directories and files.
	Path string
	// Request is the request line exactly as the client sent it.
	Request string
}

func Directory(path, request string) Target {
	return Target{Kind: KindDirectory, Path: path, Request: request}
}

func File(path, request string) Target {
	return Target{Kind: KindFile, Path: path, Request: request}
}

func Missing(request string) Target {
	return Target{Kind: KindMissing, Request: request}
}
