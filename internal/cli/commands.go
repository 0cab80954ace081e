package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/common"
)

func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for credentials and creates an account, signing in as it.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return a.report(err, "")
	}
	defer common.WipeByteArray(password)

	err = a.ctrl.RegisterSubmitted(ctx, userName, password)
	return a.report(err, fmt.Sprintf("Registered and logged in as %s.", a.session.Identity()))
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return a.report(err, "")
	}
	defer common.WipeByteArray(password)

	err = a.ctrl.LoginSubmitted(ctx, userName, password)
	return a.report(err, fmt.Sprintf("Logged in as %s.", a.session.Identity()))
}

// Roll replaces the party with a random one.
func (a *App) Roll(ctx context.Context) error {
	return a.report(a.ctrl.RollRequested(ctx), "")
}

// Show prints the active party.
func (a *App) Show(_ context.Context) error {
	fmt.Fprintf(a.out, "Party:\n%s\n", a.screen.Get())
	return nil
}

// List prints the slot names of the current scope.
func (a *App) List(_ context.Context) error {
	names := a.ctrl.ListSaveNames()
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No saves yet.")
		return nil
	}
	for i, n := range names {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, n)
	}
	return nil
}

// slotName returns name, prompting for it when empty.
func (a *App) slotName(name string) (string, error) {
	if strings.TrimSpace(name) != "" {
		return name, nil
	}
	return getSimpleText(a.reader, "Enter party name", a.out)
}

// Save stores the party under name.
func (a *App) Save(ctx context.Context, name string) error {
	name, err := a.slotName(name)
	if err != nil {
		return a.report(err, "")
	}
	a.screen.name = name
	return a.report(a.ctrl.SaveRequested(ctx), fmt.Sprintf("Saved %q.", strings.TrimSpace(name)))
}

// Load replaces the party with the named save.
func (a *App) Load(ctx context.Context, name string) error {
	name, err := a.slotName(name)
	if err != nil {
		return a.report(err, "")
	}
	return a.report(a.ctrl.LoadRequested(ctx, name), "")
}

// Delete removes the named save.
func (a *App) Delete(ctx context.Context, name string) error {
	name, err := a.slotName(name)
	if err != nil {
		return a.report(err, "")
	}
	return a.report(a.ctrl.DeleteRequested(ctx, name), fmt.Sprintf("Deleted %q.", strings.TrimSpace(name)))
}

func (a *App) QuickSave(ctx context.Context) error {
	return a.report(a.ctrl.QuickSaveRequested(ctx), "Quick save written.")
}

func (a *App) QuickLoad(ctx context.Context) error {
	return a.report(a.ctrl.QuickLoadRequested(ctx), "")
}
