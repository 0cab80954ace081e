package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/namemap"
	"github.com/dmitrijs2005/partykeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/partykeeper/internal/session"
)

func TestVerify(t *testing.T) {
	stubPassword(t, "pw")
	cfg := testConfig(t, accounts.StoreJSON)
	runScript(t, cfg, "register", "bob", "roll", "save a", "roll", "save b", "exit")

	root := session.ScopeRoot(cfg.DataDir, "bob")
	require.NoError(t, os.Remove(filepath.Join(root, namemap.SlotFileName("b"))))

	var out bytes.Buffer
	n, err := Verify(context.Background(), cfg, "bob", &out, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "2 saves, 1 problems")
	assert.Contains(t, out.String(), `missing file: "b"`)
}

func TestVerify_UnknownScope(t *testing.T) {
	cfg := testConfig(t, accounts.StoreJSON)

	_, err := Verify(context.Background(), cfg, "nobody", &bytes.Buffer{}, logging.Discard())
	var ioErr *common.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.NoDirExists(t, session.ScopeRoot(cfg.DataDir, "nobody"))
}

func TestVerify_Guest(t *testing.T) {
	cfg := testConfig(t, accounts.StoreJSON)
	runScript(t, cfg, "exit")

	var out bytes.Buffer
	n, err := Verify(context.Background(), cfg, "", &out, logging.Discard())
	require.NoError(t, err)
	assert.Zero(t, n)
}
