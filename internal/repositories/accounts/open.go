package accounts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/partykeeper/internal/common"
)

// Store kinds accepted by Open.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Open returns the account repository of the given kind rooted at dataDir.
func Open(ctx context.Context, kind, dataDir string) (Repository, error) {
	switch kind {
	case "", StoreJSON:
		return OpenJSON(filepath.Join(dataDir, common.AccountsJSONFile))
	case StoreSQLite:
		return OpenSQLite(ctx, filepath.Join(dataDir, common.AccountsDBFile))
	default:
		return nil, fmt.Errorf("unknown account store %q", kind)
	}
}
