// Package game is the controller between the interactive front end and the
// services. Front ends call the *Requested and *Submitted methods and render
// the returned error with Feedback.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/models"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
	"github.com/dmitrijs2005/partykeeper/internal/services"
	"github.com/dmitrijs2005/partykeeper/internal/session"
	"github.com/dmitrijs2005/partykeeper/internal/suggest"
)

// PartyHolder owns the party currently on screen.
type PartyHolder interface {
	Get() models.Party
	Set(models.Party)
}

// NameInput yields the slot name typed into the save field.
type NameInput interface {
	CurrentInputName() string
}

// Refresher is told to redraw after the visible state changed.
type Refresher interface {
	Notify()
}

// PartyRoller produces a new random party.
type PartyRoller interface {
	Party() (models.Party, error)
}

// Options tune controller behaviour.
type Options struct {
	// DataDir holds accounts and the users/ tree.
	DataDir string
	// AutoLoad loads the quick-save slot after login, register and start.
	AutoLoad bool
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Session *session.Session
	Saves   services.SaveService
	Auth    services.AuthService
	Roller  PartyRoller
	Party   PartyHolder
	Input   NameInput
	Screen  Refresher
	Log     logging.Logger
}

// Controller coordinates one session's saves, logins and party state.
type Controller struct {
	Deps
	opts Options
}

// NewController wires a controller. Every Deps field is required.
func NewController(d Deps, opts Options) *Controller {
	d.Log = d.Log.With("session", d.Session.ID())
	return &Controller{Deps: d, opts: opts}
}

// fail logs err with the operation name and returns it unchanged.
func (c *Controller) fail(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrWrongPassword), errors.Is(err, common.ErrNoSuchAccount),
		errors.Is(err, common.ErrDuplicateAccount), errors.Is(err, common.ErrEmptyParty):
		c.Log.Info(ctx, "request rejected", "op", op, "error", err)
	default:
		c.Log.Error(ctx, "request failed", "op", op, "error", err)
	}
	return err
}

// GameStart opens the current session's scope, which is the guest scope
// until someone logs in.
func (c *Controller) GameStart(ctx context.Context) error {
	if err := c.Saves.InitializeScope(ctx, c.Session.ScopeRoot(c.opts.DataDir)); err != nil {
		return c.fail(ctx, "start", err)
	}
	return c.fail(ctx, "start", c.restore(ctx))
}

// restore optionally loads the quick-save slot into the active party.
func (c *Controller) restore(ctx context.Context) error {
	if c.opts.AutoLoad {
		party, _, err := c.Saves.LoadSingle(ctx)
		if err != nil {
			return err
		}
		c.Party.Set(party)
	}
	c.Screen.Notify()
	return nil
}

// SaveRequested saves the active party under the name in the input field.
func (c *Controller) SaveRequested(ctx context.Context) error {
	name := c.Input.CurrentInputName()
	return c.fail(ctx, "save", c.Saves.Save(ctx, name, c.Party.Get()))
}

// LoadRequested replaces the active party with the named save.
func (c *Controller) LoadRequested(ctx context.Context, name string) error {
	party, err := c.Saves.Load(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		err = c.withSuggestion(name, err)
	}
	if err != nil {
		return c.fail(ctx, "load", err)
	}

	c.Party.Set(party)
	c.Screen.Notify()
	return nil
}

func (c *Controller) withSuggestion(name string, err error) error {
	e := &SlotNotFoundError{Name: name, Err: err}
	if s, ok := suggest.Closest(name, c.Saves.ListNames()); ok {
		e.Suggestion = s
	}
	return e
}

// DeleteRequested removes the named save and clears the active party.
func (c *Controller) DeleteRequested(ctx context.Context, name string) error {
	if err := c.Saves.Delete(ctx, name); err != nil {
		return c.fail(ctx, "delete", err)
	}
	c.Party.Set(models.Party{})
	c.Screen.Notify()
	return nil
}

// ListSaveNames returns the current scope's slot names in save order.
func (c *Controller) ListSaveNames() []string {
	return c.Saves.ListNames()
}

// LoginSubmitted authenticates the session and switches to its scope.
func (c *Controller) LoginSubmitted(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	if c.Session.IsAuthenticated() {
		return c.fail(ctx, "login", session.ErrAlreadyAuthenticated)
	}
	acc, err := c.Auth.Login(ctx, username, password)
	if err != nil {
		return c.fail(ctx, "login", err)
	}
	return c.fail(ctx, "login", c.signIn(ctx, acc))
}

// RegisterSubmitted creates an account, then signs in as it.
func (c *Controller) RegisterSubmitted(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	if c.Session.IsAuthenticated() {
		return c.fail(ctx, "register", session.ErrAlreadyAuthenticated)
	}
	acc, err := c.Auth.Register(ctx, username, password)
	if err != nil {
		return c.fail(ctx, "register", err)
	}
	return c.fail(ctx, "register", c.signIn(ctx, acc))
}

// signIn opens the account's scope before authenticating, so a failure
// leaves the session anonymous and on the guest scope.
func (c *Controller) signIn(ctx context.Context, acc *models.Account) error {
	root := session.ScopeRoot(c.opts.DataDir, namemap.SanitizeForPath(acc.Name))
	if err := c.Saves.InitializeScope(ctx, root); err != nil {
		return fmt.Errorf("open scope for %s: %w", acc.Name, err)
	}
	if err := c.Session.Authenticate(acc.Name); err != nil {
		return err
	}
	c.Log.Info(ctx, "signed in", "account", acc.Name, "scope", c.Session.ScopeName())
	return c.restore(ctx)
}

// RollRequested replaces the active party with a freshly rolled one.
func (c *Controller) RollRequested(ctx context.Context) error {
	party, err := c.Roller.Party()
	if err != nil {
		return c.fail(ctx, "roll", err)
	}
	c.Party.Set(party)
	c.Screen.Notify()
	return nil
}

// QuickSaveRequested writes the active party to the quick-save slot.
func (c *Controller) QuickSaveRequested(ctx context.Context) error {
	return c.fail(ctx, "quicksave", c.Saves.SaveSingle(ctx, c.Party.Get()))
}

// QuickLoadRequested restores the quick-save slot.
func (c *Controller) QuickLoadRequested(ctx context.Context) error {
	party, found, err := c.Saves.LoadSingle(ctx)
	if err != nil {
		return c.fail(ctx, "quickload", err)
	}
	if !found {
		return c.fail(ctx, "quickload", ErrNoQuickSave)
	}
	c.Party.Set(party)
	c.Screen.Notify()
	return nil
}
