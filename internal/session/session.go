// Package session tracks who is using the program for the lifetime of one
// run. A Session starts anonymous and can be authenticated exactly once;
// there is no way back to anonymous short of starting a new Session.
package session

import (
	"errors"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
)

// State of a session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

var ErrAlreadyAuthenticated = errors.New("session already authenticated")

// Session holds the identity that scopes save storage.
type Session struct {
	id       string
	state    State
	identity string
}

// New returns an anonymous session with a fresh id.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID identifies this run in logs.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Identity is the account name as the user typed it, or "" when anonymous.
func (s *Session) Identity() string {
	return s.identity
}

func (s *Session) IsAuthenticated() bool {
	return s.state == Authenticated
}

// Authenticate moves an anonymous session to Authenticated(identity).
func (s *Session) Authenticate(identity string) error {
	if s.state == Authenticated {
		return ErrAlreadyAuthenticated
	}
	s.state = Authenticated
	s.identity = identity
	return nil
}

// ScopeName is the directory name for this session's saves.
func (s *Session) ScopeName() string {
	if s.state != Authenticated {
		return common.GuestScope
	}
	return namemap.SanitizeForPath(s.identity)
}

// ScopeRoot is <dataDir>/users/<scope>.
func (s *Session) ScopeRoot(dataDir string) string {
	return ScopeRoot(dataDir, s.ScopeName())
}

// ScopeRoot joins a data directory and a scope name.
func ScopeRoot(dataDir, scope string) string {
	return filepath.Join(dataDir, common.UsersDir, scope)
}
