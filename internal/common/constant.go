// Package common contains shared constants, sentinel errors and small helpers
// used across PartyKeeper components.
package common

// File names inside a data directory or a scope root.
const (
	AccountsJSONFile = "accounts.json"
	AccountsDBFile   = "accounts.db"
	UsersDir         = "users"

	IndexFileName      = "party_index.txt"
	SingleSlotFileName = "single_slot_party_save.txt"

	// GuestScope is the scope used before anyone logs in.
	GuestScope = "guest"

	// PlaceholderUsername is the hint text of the login form; it is never a
	// valid account name.
	PlaceholderUsername = "username"
)
