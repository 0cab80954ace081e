package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/dbx"
	"github.com/dmitrijs2005/partykeeper/internal/migrations"
	"github.com/dmitrijs2005/partykeeper/internal/models"
)

// SQLiteRepository stores accounts in the accounts table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an already migrated database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// One writer is all SQLite supports; keep database/sql from pooling more.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return NewSQLiteRepository(db), nil
}

func findAccount(ctx context.Context, q dbx.Querier, name string) (*models.Account, error) {
	var a models.Account
	err := q.QueryRowContext(ctx,
		`SELECT name, salt, hash FROM accounts WHERE name = ? COLLATE NOCASE`, name).
		Scan(&a.Name, &a.Salt, &a.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account[%s]: %w", name, err)
	}
	return &a, nil
}

func (r *SQLiteRepository) Find(ctx context.Context, name string) (*models.Account, error) {
	return findAccount(ctx, r.db, name)
}

func (r *SQLiteRepository) Create(ctx context.Context, account models.Account) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.Querier) error {
		_, err := findAccount(ctx, tx, account.Name)
		if err == nil {
			return common.ErrDuplicateAccount
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (name, salt, hash) VALUES (?, ?, ?)`,
			account.Name, account.Salt, account.Hash)
		if err != nil {
			return fmt.Errorf("failed to create account[%s]: %w", account.Name, err)
		}
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, salt, hash FROM accounts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Name, &a.Salt, &a.Hash); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
