package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/partykeeper/internal/codec"
	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/filex"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/models"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
	"github.com/dmitrijs2005/partykeeper/internal/repositories/slotindex"
)

// ErrNoScope is returned by operations that write before InitializeScope.
var ErrNoScope = errors.New("save scope not initialized")

// SaveService stores named parties for one scope at a time.
//
// Contract:
//   - InitializeScope: create the scope directory and load its index.
//   - ListNames: slot names in insertion order; empty before InitializeScope.
//   - Save: write the party and index the name; idempotent.
//   - Load: common.ErrNotFound for unknown slots, common.ErrCorrupt for
//     files that do not decode.
//   - Delete: remove file and index entry; unknown names are a no-op.
//   - Verify: report index entries without a usable file and orphan files.
//   - SaveSingle/LoadSingle/DeleteSingle: the unnamed quick-save slot.
type SaveService interface {
	InitializeScope(ctx context.Context, scopeRoot string) error
	Scope() string
	ListNames() []string
	Save(ctx context.Context, name string, party models.Party) error
	Load(ctx context.Context, name string) (models.Party, error)
	Delete(ctx context.Context, name string) error
	Verify(ctx context.Context) ([]Problem, error)

	SaveSingle(ctx context.Context, party models.Party) error
	LoadSingle(ctx context.Context) (party models.Party, found bool, err error)
	DeleteSingle(ctx context.Context) error
}

type saveService struct {
	root  string
	index *slotindex.Index
	log   logging.Logger
}

// NewSaveService returns a SaveService with no active scope.
func NewSaveService(log logging.Logger) SaveService {
	return &saveService{log: log}
}

// MaxNameLength caps slot names, in runes.
const MaxNameLength = 128

// NormalizeName trims a slot name and rejects blank ones, overlong ones and
// ones containing control characters. The index stores one name per line.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", common.Validationf("enter a party name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", common.Validationf("party names are limited to %d characters", MaxNameLength)
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return "", common.Validationf("party names cannot contain line breaks or control characters")
	}
	return name, nil
}

func (s *saveService) InitializeScope(ctx context.Context, scopeRoot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := filex.EnsureDir(scopeRoot); err != nil {
		return common.NewIOError("create scope", scopeRoot, err)
	}
	idx, err := slotindex.Load(scopeRoot)
	if err != nil {
		return err
	}

	s.root = scopeRoot
	s.index = idx
	s.log.Info(ctx, "scope initialized", "scope", scopeRoot, "slots", idx.Len())
	return nil
}

func (s *saveService) Scope() string {
	return s.root
}

func (s *saveService) ListNames() []string {
	if s.index == nil {
		return []string{}
	}
	return s.index.Names()
}

func (s *saveService) slotPath(name string) string {
	return filepath.Join(s.root, namemap.SlotFileName(name))
}

func (s *saveService) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.index == nil {
		return ErrNoScope
	}
	return nil
}

func (s *saveService) Save(ctx context.Context, name string, party models.Party) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if err := s.ready(ctx); err != nil {
		return err
	}

	path := s.slotPath(name)
	if err := filex.WriteFileAtomic(path, codec.Encode(party)); err != nil {
		return common.NewIOError("write party", path, err)
	}

	if s.index.Add(name) {
		if err := s.index.Persist(); err != nil {
			return err
		}
	}

	s.log.Info(ctx, "party saved", "scope", s.root, "name", name, "characters", party.Len())
	return nil
}

func (s *saveService) Load(ctx context.Context, name string) (models.Party, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return models.Party{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Party{}, err
	}
	if s.index == nil || !s.index.Contains(name) {
		return models.Party{}, fmt.Errorf("%w: no save named %q", common.ErrNotFound, name)
	}

	path := s.slotPath(name)
	party, err := readParty(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Warn(ctx, "indexed party file missing", "scope", s.root, "name", name, "path", path)
		return models.Party{}, fmt.Errorf("%w: file for save %q is missing", common.ErrNotFound, name)
	}
	var de *codec.DecodeError
	if errors.As(err, &de) {
		s.log.Error(ctx, "party file corrupt", "scope", s.root, "name", name, "path", path, "error", err)
		return models.Party{}, &common.CorruptError{Name: name, Err: err}
	}
	if err != nil {
		return models.Party{}, common.NewIOError("read party", path, err)
	}

	s.log.Info(ctx, "party loaded", "scope", s.root, "name", name, "characters", party.Len())
	return party, nil
}

func (s *saveService) Delete(ctx context.Context, name string) error {
	name, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if err := s.ready(ctx); err != nil {
		return err
	}

	path := s.slotPath(name)
	removed, err := filex.RemoveIfExists(path)
	if err != nil {
		return common.NewIOError("delete party", path, err)
	}

	unindexed := s.index.Remove(name)
	if unindexed {
		if err := s.index.Persist(); err != nil {
			return err
		}
	}

	s.log.Info(ctx, "party deleted", "scope", s.root, "name", name, "file_removed", removed, "unindexed", unindexed)
	return nil
}

func (s *saveService) singlePath() string {
	return filepath.Join(s.root, common.SingleSlotFileName)
}

func (s *saveService) SaveSingle(ctx context.Context, party models.Party) error {
	if party.IsEmpty() {
		return common.ErrEmptyParty
	}
	if err := s.ready(ctx); err != nil {
		return err
	}

	path := s.singlePath()
	if err := filex.WriteFileAtomic(path, codec.Encode(party)); err != nil {
		return common.NewIOError("write party", path, err)
	}
	s.log.Info(ctx, "quick save written", "scope", s.root, "characters", party.Len())
	return nil
}

func (s *saveService) LoadSingle(ctx context.Context) (models.Party, bool, error) {
	if err := s.ready(ctx); err != nil {
		return models.Party{}, false, err
	}

	path := s.singlePath()
	party, err := readParty(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Party{}, false, nil
	}
	var de *codec.DecodeError
	if errors.As(err, &de) {
		return models.Party{}, true, &common.CorruptError{Name: common.SingleSlotFileName, Err: err}
	}
	if err != nil {
		return models.Party{}, false, common.NewIOError("read party", path, err)
	}
	return party, true, nil
}

func (s *saveService) DeleteSingle(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	path := s.singlePath()
	if _, err := filex.RemoveIfExists(path); err != nil {
		return common.NewIOError("delete party", path, err)
	}
	return nil
}

// readParty decodes the party file at path, holding the handle only for
// the duration of the call.
func readParty(path string) (models.Party, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Party{}, err
	}
	defer f.Close()

	return codec.Read(f)
}
