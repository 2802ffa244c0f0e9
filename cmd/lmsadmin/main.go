// Command lmsadmin is an operator console for the LMS REST API.
//
// It signs in with an admin account (or reuses a bearer token) and
// exposes the common administrative list and status-toggle operations
// from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
