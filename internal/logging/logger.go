// Package logging is the structured logger shared by the services, the game
// controller and the CLI. New and Discard build slog-backed instances.
package logging

import "context"

// Logger takes a message plus alternating key and value arguments:
//
//	log.Info(ctx, "party saved", "scope", scope, "name", name)
//
// Expected user mistakes (unknown slot, wrong password) go to Info; Error is
// for storage failures the user cannot fix by retyping.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds args to every later record, e.g. the session id.
	With(args ...any) Logger
}
