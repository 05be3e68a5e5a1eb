package nex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		root, request, want string
	}{
		{"/srv", "hello.txt", "/srv/hello.txt"},
		{"/srv/", "hello.txt", "/srv/hello.txt"},
		{"/srv", "/etc/passwd", "/srv/etc/passwd"},
		{"/srv", "", "/srv/"},
		{"/srv", "../x", "/srv/../x"},
		{"/srv", "a/./b/", "/srv/a/./b/"},
		{"/", "x", "/x"},
	}

	for _, tc := range tests {
		t.Run(tc.root+"+"+tc.request, func(t *testing.T) {
			assert.Equal(t, tc.want, Join(tc.root, tc.request))
		})
	}
}

func TestResolve(t *testing.T) {
	root := docroot(t)

	tests := []struct {
		request string
		kind    Kind
	}{
		{"hello.txt", KindFile},
		{".hidden", KindFile},
		{"sub", KindDirectory},
		{"sub/", KindDirectory},
		{"sub/a.txt", KindFile},
		{"", KindDirectory},
		{"/hello.txt", KindFile},
		{"nope.txt", KindMissing},
		{"hello.txt/", KindMissing},
		{"nope/../hello.txt", KindMissing},
		{"../outside.txt", KindFile},
		{"sub/../../outside.txt", KindFile},
	}

	for _, tc := range tests {
		t.Run(tc.request, func(t *testing.T) {
			got := Resolve(root, tc.request)
			assert.Equal(t, tc.kind, got.Kind, "kind of %q", tc.request)
			assert.Equal(t, tc.request, got.Request)
			if tc.kind != KindMissing {
				assert.Equal(t, Join(root, tc.request), got.Path)
			}
		})
	}
}

func TestResolve_NotRegular(t *testing.T) {
	root := docroot(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	got := Resolve(root, "dangling")
	assert.Equal(t, Missing("dangling"), got)
}

func TestResolver_Contained(t *testing.T) {
	root := docroot(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "..", "outside.txt"), filepath.Join(root, "escape")))
	require.NoError(t, os.Symlink(filepath.Join(root, "hello.txt"), filepath.Join(root, "alias")))

	r := Resolver{Root: root, Contained: true}

	tests := []struct {
		request string
		kind    Kind
	}{
		{"hello.txt", KindFile},
		{"sub", KindDirectory},
		{"", KindDirectory},
		{"sub/../hello.txt", KindFile},
		{"alias", KindFile},
		{"../outside.txt", KindMissing},
		{"sub/../../outside.txt", KindMissing},
		{"escape", KindMissing},
		{"nope.txt", KindMissing},
	}

	for _, tc := range tests {
		t.Run(tc.request, func(t *testing.T) {
			got := r.Resolve(tc.request)
			assert.Equal(t, tc.kind, got.Kind, "kind of %q", tc.request)
			assert.Equal(t, tc.request, got.Request)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Missing", KindMissing.String())
	assert.Equal(t, "Directory", KindDirectory.String())
	assert.Equal(t, "File", KindFile.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
