package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hbjs97/gocd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []store.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func loadedSet(t *testing.T, user map[string]string) *store.Set {
	t.Helper()
	s := store.New(filepath.Join(t.TempDir(), "shortcuts.toml"), testDefaults())
	for name, path := range user {
		require.NoError(t, s.Put(name, path))
	}
	set, err := s.Load()
	require.NoError(t, err)
	return set
}

func TestDefaults(t *testing.T) {
	entries := store.Defaults("/work/a/b", "/home/user", "/tmp")
	got := make(map[string]string)
	for _, e := range entries {
		assert.True(t, e.Default)
		got[e.Name] = e.Path
	}
	assert.Equal(t, map[string]string{
		".":   "/work/a/b",
		"..":  "/work/a",
		"...": "/work",
		"tmp": "/tmp",
		"~":   "/home/user",
	}, got)
}

func TestDefaults_NoHome(t *testing.T) {
	entries := store.Defaults("/work", "", "/tmp")
	assert.NotContains(t, names(entries), "~")
	assert.Len(t, entries, 4)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, store.ValidateName("ko"))
	assert.NoError(t, store.ValidateName("..."))
	assert.Error(t, store.ValidateName(""))
	assert.Error(t, store.ValidateName("a/b"))
	assert.Error(t, store.ValidateName("a\xff"))
}

func TestValidateName_MessageHasNoFuncPrefix(t *testing.T) {
	err := store.ValidateName("a/b")
	assert.Equal(t, `invalid shortcut name: "a/b" contains a path separator`, err.Error())
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, store.ValidatePath("/home/사용자/작업"))
	assert.NoError(t, store.ValidatePath("../rel\ttab"))
	assert.True(t, errors.Is(store.ValidatePath(""), store.ErrEmptyPath))
	assert.True(t, errors.Is(store.ValidatePath("/tmp/\xff\xfe"), store.ErrInvalidPath))
}

func TestSetEntries_Sorted(t *testing.T) {
	set := loadedSet(t, map[string]string{"zeta": "/z", "alpha": "/a"})
	assert.Equal(t, []string{".", "..", "...", "alpha", "tmp", "zeta", "~"}, names(set.Entries()))
}

func TestSetList_NoFilter(t *testing.T) {
	set := loadedSet(t, map[string]string{"ko": "/x/y", "Docs": "/d"})
	l := set.List("")
	assert.Equal(t, []string{".", "..", "...", "tmp", "~"}, names(l.Defaults))
	assert.Equal(t, []string{"Docs", "ko"}, names(l.Custom))
}

func TestSetList_FilterIsCaseInsensitive(t *testing.T) {
	set := loadedSet(t, map[string]string{
		"ko":      "/x/y",
		"KOMODO":  "/k",
		"bk":      "/b",
		"src":     "/s",
		"tmpwork": "/tw",
	})

	l := set.List("k")
	assert.Empty(t, l.Defaults)
	assert.Equal(t, []string{"KOMODO", "bk", "ko", "tmpwork"}, names(l.Custom))

	l = set.List("TMP")
	assert.Equal(t, []string{"tmp"}, names(l.Defaults))
	assert.Equal(t, []string{"tmpwork"}, names(l.Custom))
}

func TestSetList_OverriddenDefaultIsCustom(t *testing.T) {
	set := loadedSet(t, map[string]string{"tmp": "/scratch"})
	l := set.List("tmp")
	assert.Empty(t, l.Defaults)
	require.Len(t, l.Custom, 1)
	assert.Equal(t, "/scratch", l.Custom[0].Path)
}
