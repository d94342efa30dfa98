// SPDX-License-Identifier: MIT

// Command valvesched reads a valve network and prints the best total yield
// for one agent, two agents, or both.
//
//	valvesched -budget 30 -setup 4 testdata/example.txt
//
// Flags default to VALVESCHED_* environment variables; a .env file in the
// working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "valvesched: load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], os.Getenv)
	stop()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintf(os.Stderr, "valvesched: %s\n", exitErr.Message)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "valvesched: %v\n", err)
	os.Exit(1)
}
