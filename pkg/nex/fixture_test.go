package nex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// docroot builds the tree
//
//	<tmp>/outside.txt
//	<tmp>/docroot/hello.txt
//	<tmp>/docroot/.hidden
//	<tmp>/docroot/sub/a.txt
//	<tmp>/docroot/sub/b/
//	<tmp>/docroot/empty/
//
// and returns the docroot path.
func docroot(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	root := filepath.Join(tmp, "docroot")

	files := map[string]string{
		"outside.txt":         "secret\n",
		"docroot/hello.txt":   "hi\n",
		"docroot/.hidden":     "",
		"docroot/sub/a.txt":   "a\n",
		"docroot/sub/b/.keep": "",
	}
	for name, content := range files {
		path := filepath.Join(tmp, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))

	return root
}
