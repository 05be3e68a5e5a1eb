package nex

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps request lines onto paths below Root.
type Resolver struct {
	Root string
	// Contained rejects requests whose canonical path leaves Root.
	// When unset, ".." segments and symlinks are followed wherever they lead.
	Contained bool
}

// Join appends request to root with exactly one separator in between.
// Nothing else is cleaned, so ".." segments reach the filesystem untouched.
func Join(root, request string) string {
	return strings.TrimRight(root, "/") + "/" + strings.TrimLeft(request, "/")
}

// Resolve classifies request. It never fails: anything that is neither a
// directory nor a regular file is Missing.
func (r *Resolver) Resolve(request string) Target {
	path := Join(r.Root, request)
	if r.Contained {
		var ok bool
		if path, ok = r.contain(path); !ok {
			return Missing(request)
		}
	}

	fi, err := os.Stat(path)
	switch {
	case err != nil:
		return Missing(request)
	case fi.IsDir():
		return Directory(path, request)
	case fi.Mode().IsRegular():
		return File(path, request)
	default:
		return Missing(request)
	}
}

// contain returns the canonical form of path if it lies within the root.
func (r *Resolver) contain(path string) (string, bool) {
	root, err := filepath.EvalSymlinks(r.Root)
	if err != nil {
		return "", false
	}
	canon, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(root, canon)
	if err != nil || (rel != "." && !filepath.IsLocal(rel)) {
		return "", false
	}
	return canon, true
}

// Resolve classifies request against root in the default, uncontained mode.
func Resolve(root, request string) Target {
	r := Resolver{Root: root}
	return r.Resolve(request)
}
