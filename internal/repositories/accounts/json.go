package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/filex"
	"github.com/dmitrijs2005/partykeeper/internal/models"
)

// accountList is the on-disk shape of accounts.json.
type accountList struct {
	Accounts []models.Account `json:"accounts"`
}

// JSONRepository keeps all accounts in memory and rewrites the whole file
// on every Create.
type JSONRepository struct {
	path  string
	store accountList
}

// OpenJSON loads accounts from path. A missing file is an empty store; a
// file that does not parse is an error so it is never silently overwritten.
func OpenJSON(path string) (*JSONRepository, error) {
	r := &JSONRepository{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, common.NewIOError("read accounts", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(data, &r.store); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return r, nil
}

func (r *JSONRepository) Find(ctx context.Context, name string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, a := range r.store.Accounts {
		if strings.EqualFold(a.Name, name) {
			acc := a
			return &acc, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *JSONRepository) Create(ctx context.Context, account models.Account) error {
	if _, err := r.Find(ctx, account.Name); err == nil {
		return common.ErrDuplicateAccount
	} else if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	next := accountList{Accounts: append(append([]models.Account(nil), r.store.Accounts...), account)}
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := filex.WriteFileAtomic(r.path, data); err != nil {
		return common.NewIOError("write accounts", r.path, err)
	}

	r.store = next
	return nil
}

func (r *JSONRepository) List(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Account(nil), r.store.Accounts...), nil
}

func (r *JSONRepository) Close() error {
	return nil
}
