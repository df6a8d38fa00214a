// Command drilltour computes short drilling tours for board files with
// adaptive tabu search.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	root := newRootCmd()

	// Set up panic recovery to handle unexpected errors gracefully
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(exitError)
		}
	}()

	if err := Execute(context.Background(), root); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	os.Exit(exitSuccess)
}
