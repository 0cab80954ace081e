package slotindex

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/partykeeper/internal/common"
)

func writeIndex(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.IndexFileName), []byte(content), 0o600))
}

func readIndex(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, common.IndexFileName))
	require.NoError(t, err)
	return string(data)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	idx, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Names())
}

func TestLoad_TrimsSkipsBlanksKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "  Zeta \n\nalpha\n   \nMid\r\n")

	idx, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "alpha", "Mid"}, idx.Names())
}

func TestLoad_DoesNotDeduplicate(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "A\nA\n")

	idx, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, idx.Names())
}

func TestLoad_LongLine(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("x", 70000)
	writeIndex(t, dir, "a\n"+long+"\nb\n")

	idx, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", long, "b"}, idx.Names())
}

func TestLoad_DirectoryInPlaceOfFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, common.IndexFileName), 0o700))

	_, err := Load(dir)
	require.Error(t, err)
	var ioErr *common.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestAddRemoveContains(t *testing.T) {
	idx := New(t.TempDir())

	assert.True(t, idx.Add("A"))
	assert.True(t, idx.Add("B"))
	assert.False(t, idx.Add("A"), "duplicate add is a no-op")
	assert.True(t, idx.Contains("A"))
	assert.False(t, idx.Contains("a"), "match is case-sensitive")

	assert.True(t, idx.Remove("A"))
	assert.False(t, idx.Remove("A"))
	assert.Equal(t, []string{"B"}, idx.Names())
}

func TestNames_ReturnsCopy(t *testing.T) {
	idx := New(t.TempDir())
	idx.Add("A")

	names := idx.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"A"}, idx.Names())
}

func TestPersist_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	idx := New(dir)
	idx.Add("first party")
	idx.Add("Second, with comma")
	idx.Add("third")
	idx.Remove("first party")
	require.NoError(t, idx.Persist())

	assert.Equal(t, "Second, with comma\nthird\n", readIndex(t, dir))

	back, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, idx.Names(), back.Names())
}

func TestPersist_EmptyWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeIndex(t, dir, "old\n")

	idx := New(dir)
	require.NoError(t, idx.Persist())
	assert.Equal(t, "", readIndex(t, dir))
}

func TestPersist_ErrorKeepsMemory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	idx := New(dir)
	idx.Add("A")

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := idx.Persist()
	require.Error(t, err)
	var ioErr *common.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "persist index", ioErr.Op)
	assert.Equal(t, []string{"A"}, idx.Names())
}
