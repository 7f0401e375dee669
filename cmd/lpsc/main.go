package main

import (
	"fmt"
	"os"

	"github.com/phillarmonic/lpsc/cmd/lpsc/app"
)

// Populated through -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli := app.NewApp(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
