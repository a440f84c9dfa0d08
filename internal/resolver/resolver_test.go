package resolver_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/gocd/internal/resolver"
	"github.com/hbjs97/gocd/internal/store"
	"github.com/hbjs97/gocd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/user"

func newResolver(t *testing.T, workDir string) *resolver.Resolver {
	t.Helper()
	path := testutil.SetupTestShortcuts(t)
	s := store.New(path, store.Defaults(workDir, testHome, os.TempDir()))
	set, err := s.Load()
	require.NoError(t, err)
	return resolver.New(set, testHome)
}

func TestResolve_Shortcut(t *testing.T) {
	r := newResolver(t, "/work/a/b")

	got, err := r.Resolve("ko")
	require.NoError(t, err)
	assert.Equal(t, "/x/y", got)
}

func TestResolve_ShortcutWithSubPath(t *testing.T) {
	r := newResolver(t, "/work/a/b")

	got, err := r.Resolve("ko/sub/dir")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/x/y", "sub", "dir"), got)
}

func TestResolve_SubPathIsNormalized(t *testing.T) {
	r := newResolver(t, "/work/a/b")

	got, err := r.Resolve("ko/sub/./other/../dir/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/x/y", "sub", "dir"), got)
}

func TestResolve_TrailingSeparator(t *testing.T) {
	r := newResolver(t, "/work/a/b")

	got, err := r.Resolve("ko/")
	require.NoError(t, err)
	assert.Equal(t, "/x/y", got)
}

func TestResolve_BackslashSeparator(t *testing.T) {
	r := newResolver(t, "/work/a/b")

	got, err := r.Resolve(`ko\sub`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/x/y", "sub"), got)
}

func TestResolve_Defaults(t *testing.T) {
	workDir := testutil.TempWorkDir(t)
	r := newResolver(t, workDir)

	tests := []struct {
		query string
		want  string
	}{
		{".", workDir},
		{"..", filepath.Dir(workDir)},
		{"...", filepath.Dir(filepath.Dir(workDir))},
		{"tmp", os.TempDir()},
		{"~", testHome},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := r.Resolve(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ExpandedHome(t *testing.T) {
	r := newResolver(t, "/work")

	got, err := r.Resolve("/home/user/projects/go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testHome, "projects", "go"), got)

	got, err = r.Resolve("/home/user")
	require.NoError(t, err)
	assert.Equal(t, testHome, got)
}

func TestResolve_ExpandedHomeNeedsBoundary(t *testing.T) {
	r := newResolver(t, "/work")

	_, err := r.Resolve("/home/username/x")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestResolve_RootHome(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "shortcuts.toml"), store.Defaults("/work", "/", "/tmp"))
	set, err := s.Load()
	require.NoError(t, err)
	r := resolver.New(set, "/")

	got, err := r.Resolve("/etc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/", "etc"), got)

	got, err = r.Resolve("/")
	require.NoError(t, err)
	assert.Equal(t, "/", got)
}

func TestResolve_NotFound(t *testing.T) {
	r := newResolver(t, "/work")

	_, err := r.Resolve("nope/sub")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	var nf *store.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nope", nf.Name)
}

func TestResolve_Empty(t *testing.T) {
	r := newResolver(t, "/work")

	_, err := r.Resolve("")
	assert.True(t, errors.Is(err, resolver.ErrEmptyQuery))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		query, name, suffix string
	}{
		{"ko", "ko", ""},
		{"ko/a/b", "ko", "a/b"},
		{`ko\a`, "ko", "a"},
		{`a\b/c`, `a\b`, "c"},
		{"/abs", "", "abs"},
	}
	for _, tt := range tests {
		name, suffix := resolver.Split(tt.query)
		assert.Equal(t, tt.name, name, tt.query)
		assert.Equal(t, tt.suffix, suffix, tt.query)
	}
}
