// Package report walks a root folder and prints a status summary per repository.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chmouel/repostatus/internal/git"
	log "github.com/chmouel/repostatus/internal/log"
	"github.com/chmouel/repostatus/internal/models"
	"github.com/chmouel/repostatus/internal/scan"
	"github.com/chmouel/repostatus/internal/status"
)

const (
	cleanMark = "✓"
	dirtyMark = "✗"
	indent    = "    "
)

// Prober inspects one directory.
type Prober interface {
	Probe(ctx context.Context, dir string) (git.ProbeResult, error)
}

// Reporter prints one summary per immediate subdirectory of a root.
// Directories are processed sequentially and each report is printed as soon
// as it is complete.
type Reporter struct {
	out        io.Writer
	prober     Prober
	styles     Styles
	gitName    string
	showBranch bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithBranch renders the branch header next to each repository name.
func WithBranch(enabled bool) Option {
	return func(r *Reporter) { r.showBranch = enabled }
}

// WithToolName sets the command name used in "not found" messages.
func WithToolName(name string) Option {
	return func(r *Reporter) { r.gitName = name }
}

// New returns a Reporter writing to out.
func New(out io.Writer, prober Prober, styles Styles, opts ...Option) *Reporter {
	r := &Reporter{
		out:     out,
		prober:  prober,
		styles:  styles,
		gitName: "git",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scans root and prints a report for every subdirectory. A missing root
// is reported and ends the scan without error; any returned error is
// unexpected and also ends it.
func (r *Reporter) Run(ctx context.Context, root string) error {
	entries, err := scan.Subdirectories(root)
	if err != nil {
		if errors.Is(err, scan.ErrRootNotFound) {
			log.Printf("scan: %v", err)
			return r.println(r.styles.Error.Render(fmt.Sprintf("Error: Root folder '%s' does not exist.", root)))
		}
		return err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep, err := r.Inspect(ctx, entry)
		if err != nil {
			return err
		}
		log.Printf("scan: %s -> %s (%d entries)", entry.Path, rep.State, len(rep.Entries))
		if err := r.Render(rep); err != nil {
			return err
		}
	}
	return nil
}

// Inspect probes one directory and builds its report.
func (r *Reporter) Inspect(ctx context.Context, entry scan.Entry) (*models.RepoReport, error) {
	rep := &models.RepoReport{Name: entry.Name, Path: entry.Path}

	res, err := r.prober.Probe(ctx, entry.Path)
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case git.ProbeNotRepo:
		rep.State = models.StateNotARepo
	case git.ProbeToolMissing:
		rep.State = models.StateToolMissing
	case git.ProbeFailed:
		rep.State = models.StateProbeFailed
		rep.Err = res.Stderr
	case git.ProbeClean, git.ProbeDirty:
		out := res.Output
		if r.showBranch {
			rep.Branch, out = status.SplitBranchHeader(out)
		}
		rep.Entries = status.ParseOutput(out)
		rep.State = models.StateClean
		if res.Outcome == git.ProbeDirty && len(rep.Entries) > 0 {
			rep.State = models.StateDirty
		}
	default:
		return nil, fmt.Errorf("unknown probe outcome %d for %s", res.Outcome, entry.Path)
	}
	return rep, nil
}

// Render prints a finished report.
func (r *Reporter) Render(rep *models.RepoReport) error {
	s := r.styles
	switch rep.State {
	case models.StateNotARepo:
		return r.println(s.Warn.Render(fmt.Sprintf("'%s' is not a git repository.", rep.Name)))
	case models.StateToolMissing:
		return r.println(s.Error.Render(fmt.Sprintf("Error: %s command not found.", r.gitName)))
	case models.StateProbeFailed:
		return r.println(s.Error.Render(fmt.Sprintf("Error: git status failed in '%s': %s", rep.Name, rep.Err)))
	case models.StateClean:
		return r.println(s.Success.Render(cleanMark) + " " + r.header(rep))
	case models.StateDirty:
		lines := make([]string, 0, len(rep.Entries)+1)
		lines = append(lines, s.Error.Render(dirtyMark)+" "+r.header(rep))
		for _, entry := range rep.Entries {
			lines = append(lines, indent+r.entryLine(entry))
		}
		return r.println(strings.Join(lines, "\n"))
	default:
		return fmt.Errorf("cannot render %s report for %s", rep.State, rep.Name)
	}
}

func (r *Reporter) header(rep *models.RepoReport) string {
	name := r.styles.Name.Render(rep.Name)
	if rep.Branch == "" {
		return name
	}
	return name + " " + r.styles.Branch.Render("("+rep.Branch+")")
}

func (r *Reporter) entryLine(entry models.StatusEntry) string {
	if entry.Malformed() {
		return entry.Raw
	}
	sym := status.Classify(entry.Code)
	return r.styles.Category(sym.Category).Render(sym.Glyph) + " " + entry.Path
}

func (r *Reporter) println(line string) error {
	_, err := fmt.Fprintln(r.out, line)
	return err
}
