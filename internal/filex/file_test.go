package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_IdempotentAndNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "users", "bob")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "users")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o660))

	require.Error(t, EnsureDir(p), "should fail when a file exists with the same name")
}

func TestRemoveIfExists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(p, []byte("1"), 0o600))

	removed, err := RemoveIfExists(p)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = RemoveIfExists(p)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestWriteFileAtomic_ReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "party_index.txt")

	require.NoError(t, WriteFileAtomic(p, []byte("old\n")))
	require.NoError(t, WriteFileAtomic(p, []byte("new\n")))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "new\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "a.txt")
	require.Error(t, WriteFileAtomic(p, []byte("x")))
}
