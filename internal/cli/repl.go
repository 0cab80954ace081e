package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/suggest"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Roll(ctx context.Context) error
	Show(ctx context.Context) error
	List(ctx context.Context) error
	Save(ctx context.Context, name string) error
	Load(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	QuickSave(ctx context.Context) error
	QuickLoad(ctx context.Context) error
}

var commandNames = []string{
	"help", "register", "login", "roll", "show", "list", "save", "load",
	"delete", "quicksave", "quickload", "exit", "quit",
}

// readLine returns the next input line without its line ending. ok is false
// at end of input.
func readLine(r *bufio.Reader) (line string, ok bool) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// runREPL starts a simple read–eval–print loop for the partykeeper CLI.
//
// It reads a line from r, parses the first token as the command and the
// rest of the line as its argument, and dispatches to methods on 'a'.
// Unknown commands are reported back with the closest known command. The
// loop exits at end of input or when the user types "exit" or "quit".
//
// Slot names may contain spaces: "save dragon hunt" saves to "dragon hunt".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own feedback.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pk %s> ", statusFn()))
		line, ok := readLine(r)
		if !ok {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "help":
			printlnFn("Available commands: roll, show, (l)ist, save <name>, load <name>, delete <name>, quicksave, quickload, exit")
			if !a.isLoggedIn() {
				printlnFn("Not logged in: register or login to keep your own saves (playing as guest).")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "roll":
			_ = a.Roll(ctx)

		case "show":
			_ = a.Show(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "save":
			_ = a.Save(ctx, arg)

		case "load":
			_ = a.Load(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "quicksave":
			_ = a.QuickSave(ctx)

		case "quickload":
			_ = a.QuickLoad(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if s, ok := suggest.Closest(cmd, commandNames); ok {
				printlnFn(fmt.Sprintf("Unknown command: %s (did you mean %q?)", cmd, s))
			} else {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
