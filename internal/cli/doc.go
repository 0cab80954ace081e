// Package cli is the interactive terminal front end of partykeeper.
//
// It wires configuration, storage and the game controller together (see
// NewApp) and runs a line-oriented REPL over stdin. Each REPL command maps
// to one controller request; errors are rendered with game.Feedback and the
// loop keeps going.
package cli
