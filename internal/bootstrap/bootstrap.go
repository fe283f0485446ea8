package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/repostatus/internal/buildinfo"
	"github.com/chmouel/repostatus/internal/config"
	"github.com/chmouel/repostatus/internal/git"
	"github.com/chmouel/repostatus/internal/log"
	"github.com/chmouel/repostatus/internal/report"
	"github.com/chmouel/repostatus/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// NewCommand returns the root repostatus command.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "repostatus",
		Usage:     "Show the git status of every repository directly under a folder",
		ArgsUsage: "[folder]",
		Version:   buildinfo.String(),
		Flags:     globalFlags(),
		Action:    runScan,
	}
}

// runScan is the default action: scan the folder argument (or ".").
func runScan(ctx context.Context, cmd *urfavecli.Command) error {
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}

	if cmd.Bool("list-themes") {
		printThemes(out)
		return nil
	}
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one folder argument, got %d", cmd.Args().Len())
	}

	// Without the flag, early messages stay buffered until the config says
	// where debug_log goes.
	if path := cmd.String("debug-log"); path != "" {
		setupDebugLog(path, errOut)
	}
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(errOut, "Error closing debug log: %v\n", err)
		}
	}()

	cfg, err := loadConfig(cmd, errOut)
	if err != nil {
		return err
	}
	if cmd.String("debug-log") == "" {
		setupDebugLog(cfg.DebugLog, errOut)
	}

	root := "."
	if cmd.Args().Len() == 1 {
		root = cmd.Args().First()
	}
	expanded, err := config.ExpandHome(root)
	if err != nil {
		return fmt.Errorf("error expanding folder %q: %w", root, err)
	}

	mode, err := theme.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	renderer := theme.NewRenderer(out, mode, isTerminal(out))
	styles := report.NewStyles(renderer, theme.GetPalette(cfg.Theme))

	gitSvc := git.NewService(cfg.GitPath, git.WithGitFile(cfg.GitFileRepos), git.WithBranch(cfg.ShowBranch))
	reporter := report.New(out, gitSvc, styles,
		report.WithBranch(cfg.ShowBranch),
		report.WithToolName(gitSvc.GitPath()),
	)

	log.Printf("repostatus: root=%s theme=%s color=%s git=%s", expanded, cfg.Theme, mode, gitSvc.GitPath())
	if err := reporter.Run(ctx, expanded); err != nil {
		log.Printf("repostatus: unexpected error: %v", err)
		fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("An unexpected error occurred: %v", err)))
	}
	return nil
}

// loadConfig layers the config file, CLI overrides and dedicated flags.
func loadConfig(cmd *urfavecli.Command, errOut io.Writer) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		cfg.Theme = normalized
	}
	if color := cmd.String("color"); color != "" {
		mode, err := theme.ParseColorMode(color)
		if err != nil {
			return nil, err
		}
		cfg.Color = string(mode)
	}
	if cmd.Bool("no-color") {
		cfg.Color = string(theme.ColorNever)
	}
	if gitPath := cmd.String("git-path"); gitPath != "" {
		cfg.GitPath = gitPath
	}
	if cmd.IsSet("show-branch") {
		cfg.ShowBranch = cmd.Bool("show-branch")
	}
	log.Printf("config: theme=%s color=%s git_path=%s gitfile_repos=%t show_branch=%t",
		cfg.Theme, cfg.Color, cfg.GitPath, cfg.GitFileRepos, cfg.ShowBranch)
	return cfg, nil
}

// setupDebugLog points the debug log at path, or discards it when empty.
func setupDebugLog(path string, errOut io.Writer) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(errOut, "Error opening debug log file %q: %v\n", path, err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// printThemes prints the available palettes.
func printThemes(out io.Writer) {
	fmt.Fprintln(out, "Available themes:")
	for _, name := range theme.AvailableThemes() {
		suffix := ""
		if name == theme.DefaultName() {
			suffix = " (default)"
		}
		fmt.Fprintf(out, "  %s%s\n", name, suffix)
	}
}
