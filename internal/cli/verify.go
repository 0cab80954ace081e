package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/config"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
	"github.com/dmitrijs2005/partykeeper/internal/services"
	"github.com/dmitrijs2005/partykeeper/internal/session"
)

// Verify checks the save scope of user (the guest scope when user is empty)
// and writes one line per problem to w. It returns the number of problems.
func Verify(ctx context.Context, c *config.Config, user string, w io.Writer, log logging.Logger) (int, error) {
	scope := common.GuestScope
	if user != "" {
		scope = namemap.SanitizeForPath(user)
	}
	root := session.ScopeRoot(c.DataDir, scope)

	fi, err := os.Stat(root)
	if err != nil {
		return 0, common.NewIOError("open scope", root, err)
	}
	if !fi.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", root)
	}

	saves := services.NewSaveService(log)
	if err := saves.InitializeScope(ctx, root); err != nil {
		return 0, err
	}

	problems, err := saves.Verify(ctx)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "Scope %s: %d saves, %d problems\n", root, len(saves.ListNames()), len(problems))
	for _, p := range problems {
		fmt.Fprintln(w, "  "+p.String())
	}
	return len(problems), nil
}
