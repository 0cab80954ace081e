package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/partykeeper/internal/models"
)

// screen is the REPL's view state: the active party and the slot name most
// recently entered. It implements game.PartyHolder, game.NameInput and
// game.Refresher.
type screen struct {
	party models.Party
	name  string
	out   io.Writer
	quiet bool
}

func (s *screen) Get() models.Party { return s.party.Clone() }

func (s *screen) Set(p models.Party) { s.party = p.Clone() }

func (s *screen) CurrentInputName() string { return s.name }

// Notify redraws the party.
func (s *screen) Notify() {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.out, "Party:\n%s\n", s.party)
}
