// Package accounts persists account records (name, salt, password hash).
//
// Two backends implement Repository:
//
//   - JSONRepository keeps every account in a single accounts.json file,
//     rewritten on each change. This is the default.
//   - SQLiteRepository keeps accounts in an SQLite database migrated with goose.
//
// Names are unique under case-insensitive comparison in both backends.
package accounts
