package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/cryptox"
	"github.com/dmitrijs2005/partykeeper/internal/logging"
	"github.com/dmitrijs2005/partykeeper/internal/models"
	"github.com/dmitrijs2005/partykeeper/internal/repositories/accounts"
)

// AuthService registers and authenticates accounts.
//
// Contract:
//   - Register: create a new account; common.ErrDuplicateAccount when the
//     name is taken, ignoring case.
//   - Login: common.ErrNoSuchAccount for unknown names,
//     common.ErrWrongPassword for a bad password.
//   - Close: release the account repository.
//
// Both operations validate their input first and return an error matching
// common.ErrValidation without touching storage.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (*models.Account, error)
	Login(ctx context.Context, username string, password []byte) (*models.Account, error)
	Close() error
}

type authService struct {
	repo accounts.Repository
	log  logging.Logger
}

// NewAuthService constructs an AuthService over repo.
func NewAuthService(repo accounts.Repository, log logging.Logger) AuthService {
	return &authService{repo: repo, log: log}
}

// ValidateCredentials trims username and checks both fields.
func ValidateCredentials(username string, password []byte) (string, error) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return "", common.Validationf("enter a username")
	case strings.EqualFold(username, common.PlaceholderUsername):
		return "", common.Validationf("invalid username")
	case len(password) == 0:
		return "", common.Validationf("enter a password")
	}
	return username, nil
}

func (a *authService) Register(ctx context.Context, username string, password []byte) (*models.Account, error) {
	username, err := ValidateCredentials(username, password)
	if err != nil {
		return nil, err
	}

	_, err = a.repo.Find(ctx, username)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", common.ErrDuplicateAccount, username)
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	salt := cryptox.MakeSalt()
	hash, err := cryptox.HashPassword(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{Name: username, Salt: salt, Hash: hash}
	if err := a.repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	a.log.Info(ctx, "account registered", "account", username)
	return &account, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Account, error) {
	username, err := ValidateCredentials(username, password)
	if err != nil {
		return nil, err
	}

	account, err := a.repo.Find(ctx, username)
	if errors.Is(err, common.ErrNotFound) {
		a.log.Info(ctx, "login for unknown account", "account", username)
		return nil, fmt.Errorf("%w: %s", common.ErrNoSuchAccount, username)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	ok, err := cryptox.VerifyPassword(account.Salt, account.Hash, password)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		a.log.Info(ctx, "login with wrong password", "account", account.Name)
		return nil, common.ErrWrongPassword
	}

	a.log.Info(ctx, "login succeeded", "account", account.Name)
	return account, nil
}

func (a *authService) Close() error {
	return a.repo.Close()
}
