package slotindex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/filex"
)

// Index is the in-memory copy of a scope's party_index.txt.
type Index struct {
	path  string
	names []string
}

// New returns an empty index backed by the index file under scopeRoot.
// Nothing is read or written.
func New(scopeRoot string) *Index {
	return &Index{path: filepath.Join(scopeRoot, common.IndexFileName)}
}

// Load reads the index file under scopeRoot. A missing file yields an empty
// index; any other read failure is returned as *common.IOError.
func Load(scopeRoot string) (*Index, error) {
	idx := New(scopeRoot)

	data, err := os.ReadFile(idx.path)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, common.NewIOError("read index", idx.path, err)
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		idx.names = append(idx.names, name)
	}
	return idx, nil
}

// Path is the backing file location.
func (i *Index) Path() string {
	return i.path
}

// Contains reports whether name is present, by exact string match.
func (i *Index) Contains(name string) bool {
	return slices.Contains(i.names, name)
}

// Add appends name unless already present and reports whether it did.
func (i *Index) Add(name string) bool {
	if i.Contains(name) {
		return false
	}
	i.names = append(i.names, name)
	return true
}

// Remove drops the first occurrence of name and reports whether it did.
func (i *Index) Remove(name string) bool {
	pos := slices.Index(i.names, name)
	if pos < 0 {
		return false
	}
	i.names = slices.Delete(i.names, pos, pos+1)
	return true
}

// Names returns a copy of the names in insertion order.
func (i *Index) Names() []string {
	return slices.Clone(i.names)
}

func (i *Index) Len() int {
	return len(i.names)
}

// Persist overwrites the backing file with the current names, one per line.
// On failure the in-memory index is still correct but the file is stale.
func (i *Index) Persist() error {
	var sb strings.Builder
	for _, name := range i.names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	if err := filex.WriteFileAtomic(i.path, []byte(sb.String())); err != nil {
		return common.NewIOError("persist index", i.path, err)
	}
	return nil
}
