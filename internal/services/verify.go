package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/partykeeper/internal/codec"
	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
)

// ProblemKind classifies a Verify finding.
type ProblemKind int

const (
	// ProblemMissingFile: the index names a slot whose file does not exist.
	ProblemMissingFile ProblemKind = iota + 1
	// ProblemCorrupt: the slot file exists but does not decode.
	ProblemCorrupt
	// ProblemDuplicate: the index lists the same name more than once.
	ProblemDuplicate
	// ProblemOrphan: a party_*.txt file that no indexed name maps to.
	ProblemOrphan
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemMissingFile:
		return "missing file"
	case ProblemCorrupt:
		return "corrupt"
	case ProblemDuplicate:
		return "duplicate index entry"
	case ProblemOrphan:
		return "orphan file"
	default:
		return "unknown"
	}
}

// Problem is a single inconsistency found in a scope.
type Problem struct {
	Kind ProblemKind
	Name string // empty for orphans
	Path string
	Err  error
}

func (p Problem) String() string {
	switch {
	case p.Name == "":
		return fmt.Sprintf("%s: %s", p.Kind, p.Path)
	case p.Err != nil:
		return fmt.Sprintf("%s: %q (%s): %v", p.Kind, p.Name, p.Path, p.Err)
	default:
		return fmt.Sprintf("%s: %q (%s)", p.Kind, p.Name, p.Path)
	}
}

// Verify checks that every indexed name has a decodable file and lists slot
// files that the index does not reach. It reads but never modifies the scope.
func (s *saveService) Verify(ctx context.Context) ([]Problem, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	var problems []Problem
	reachable := make(map[string]bool)

	for _, name := range s.index.Names() {
		file := namemap.SlotFileName(name)
		path := filepath.Join(s.root, file)
		if reachable[file] {
			problems = append(problems, Problem{Kind: ProblemDuplicate, Name: name, Path: path})
			continue
		}
		reachable[file] = true

		var de *codec.DecodeError
		_, err := readParty(path)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			problems = append(problems, Problem{Kind: ProblemMissingFile, Name: name, Path: path})
		case errors.As(err, &de):
			problems = append(problems, Problem{Kind: ProblemCorrupt, Name: name, Path: path, Err: err})
		default:
			return nil, common.NewIOError("verify party", path, err)
		}
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, common.NewIOError("list scope", s.root, err)
	}
	for _, e := range entries {
		if e.IsDir() || !namemap.IsSlotFileName(e.Name()) || reachable[e.Name()] {
			continue
		}
		problems = append(problems, Problem{Kind: ProblemOrphan, Path: filepath.Join(s.root, e.Name())})
	}

	s.log.Info(ctx, "scope verified", "scope", s.root, "slots", s.index.Len(), "problems", len(problems))
	return problems, nil
}
