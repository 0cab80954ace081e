// Package main is the entry point for the partykeeper CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Args[1:]).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
