package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/partykeeper/internal/config"
	"github.com/dmitrijs2005/partykeeper/internal/filex"
	"github.com/dmitrijs2005/partykeeper/internal/game"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/partykeeper/internal/roller"
	"github.com/dmitrijs2005/partykeeper/internal/services"
	"github.com/dmitrijs2005/partykeeper/internal/session"
)

// App is one interactive run: a session, its controller and the terminal.
type App struct {
	config  *config.Config
	ctrl    *game.Controller
	session *session.Session
	auth    services.AuthService
	screen  *screen
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

// NewApp opens the account store under c.DataDir and wires a controller for
// a fresh anonymous session. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return newApp(ctx, c, log, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	repo, err := accounts.Open(ctx, c.AccountStore, c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}

	sess := session.New()
	scr := &screen{out: out}
	auth := services.NewAuthService(repo, log)

	ctrl := game.NewController(game.Deps{
		Session: sess,
		Saves:   services.NewSaveService(log),
		Auth:    auth,
		Roller:  roller.New(nil, roller.WithMaxPartySize(c.MaxPartySize), roller.WithMaxEquipment(c.MaxEquipment)),
		Party:   scr,
		Input:   scr,
		Screen:  scr,
		Log:     log,
	}, game.Options{DataDir: c.DataDir, AutoLoad: c.AutoLoad})

	log.Debug(ctx, "app initialized", "session", sess.ID(), "data_dir", c.DataDir, "account_store", c.AccountStore)

	return &App{
		config:  c,
		ctrl:    ctrl,
		session: sess,
		auth:    auth,
		screen:  scr,
		reader:  bufio.NewReader(in),
		out:     out,
		log:     log,
	}, nil
}

// Run starts the game in the guest scope and serves the REPL until EOF or
// exit.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to partykeeper (type 'help' for commands)")
	if err := a.ctrl.GameStart(ctx); err != nil {
		return err
	}
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the account store.
func (a *App) Close() error {
	return a.auth.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.session.IsAuthenticated() {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", a.session.Identity())
}

// report prints the feedback for err, or ok when err is nil.
func (a *App) report(err error, ok string) error {
	if err != nil {
		fmt.Fprintln(a.out, game.Feedback(err))
		return err
	}
	if ok != "" {
		fmt.Fprintln(a.out, ok)
	}
	return nil
}
