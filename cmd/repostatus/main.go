// Package main is the entry point for the repostatus application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/repostatus/internal/bootstrap"
	"github.com/chmouel/repostatus/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	if err := bootstrap.NewCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
