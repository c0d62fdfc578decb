package main

import (
	"os"

	"detour.dev/detour/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], version, commit, date, cli.TerminalContextFactory, os.Stderr))
}
