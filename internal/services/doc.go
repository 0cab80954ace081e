// Package services contains the application services behind the CLI:
// SaveService, which stores named parties under a scope directory, and
// AuthService, which registers and logs in accounts.
//
// Services are synchronous and hold no locks. Two processes writing the same
// scope can race on party_index.txt; the program assumes one user at a time.
package services
