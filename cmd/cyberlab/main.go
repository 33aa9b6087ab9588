// Package main is the entry point for the cyberlab CLI.
//
// cyberlab onboards a customer onto the NEXTGEN CyberLAB CloudShare
// subscription: it creates the customer's project, invites their users and
// provisions a starter lab environment.
//
// Commands: onboard, ping, validate-roster, version, completion.
//
// For detailed usage information, run:
//
//	cyberlab --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NEXTGEN-CyberLAB/API-Tools/cmd/cyberlab/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
