// Package bootstrap provides the repostatus command line front-end.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags for the application.
// Note: --version and --help are provided automatically by urfave/cli
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Colour palette to use (see --list-themes)",
		},
		&urfavecli.StringFlag{
			Name:  "color",
			Usage: "When to colour output: auto, always or never",
		},
		&urfavecli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable coloured output (same as --color=never)",
		},
		&urfavecli.StringFlag{
			Name:  "git-path",
			Usage: "git executable used to query status",
		},
		&urfavecli.BoolFlag{
			Name:    "show-branch",
			Aliases: []string{"b"},
			Usage:   "Show the branch next to each repository",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=rs.key=value",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available colour palettes",
		},
	}
}
