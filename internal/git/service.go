// Package git probes directories with `git status -s`.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/chmouel/repostatus/internal/log"
)

// MetadataDir is the per-repository marker directory.
const MetadataDir = ".git"

const gitFilePrefix = "gitdir:"

// LookupPath is used to find executables in PATH. It's exposed as a package variable
// so tests can mock it and avoid depending on system binaries being installed.
var LookupPath = exec.LookPath

// ProbeOutcome tags the result of probing one directory.
type ProbeOutcome int

// Probe outcomes.
const (
	ProbeNotRepo ProbeOutcome = iota
	ProbeClean
	ProbeDirty
	ProbeFailed
	ProbeToolMissing
)

// ProbeResult is what a probe of one directory produced.
// Output is set for ProbeClean/ProbeDirty, Stderr for ProbeFailed.
type ProbeResult struct {
	Outcome ProbeOutcome
	Output  string
	Stderr  string
}

// Service runs git status probes.
type Service struct {
	gitPath      string
	allowGitFile bool
	branch       bool
}

// Option configures a Service.
type Option func(*Service)

// WithGitFile accepts a ".git" file pointing at a gitdir as a repository marker.
func WithGitFile(enabled bool) Option {
	return func(s *Service) { s.allowGitFile = enabled }
}

// WithBranch adds the `## branch` header line to the probe output.
func WithBranch(enabled bool) Option {
	return func(s *Service) { s.branch = enabled }
}

// NewService constructs a Service running gitPath ("git" when empty).
func NewService(gitPath string, opts ...Option) *Service {
	gitPath = strings.TrimSpace(gitPath)
	if gitPath == "" {
		gitPath = "git"
	}
	s := &Service{gitPath: gitPath}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GitPath returns the git executable the service runs.
func (s *Service) GitPath() string {
	return s.gitPath
}

func (s *Service) debugf(format string, args ...any) {
	log.Printf(format, args...)
}

// IsRepository reports whether dir carries the git metadata marker.
// Only the directory form counts unless the service accepts git files.
// A marker that cannot be stat'd or read (permissions, symlink loops) does
// not count either.
func (s *Service) IsRepository(dir string) bool {
	marker := filepath.Join(dir, MetadataDir)
	info, err := os.Stat(marker)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.debugf("error: stat %s: %v", marker, err)
		}
		return false
	}
	if info.IsDir() {
		return true
	}
	if !s.allowGitFile || !info.Mode().IsRegular() {
		return false
	}

	// #nosec G304 -- marker is the .git entry of a scanned directory
	data, err := os.ReadFile(marker)
	if err != nil {
		s.debugf("error: read %s: %v", marker, err)
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), gitFilePrefix)
}

func (s *Service) statusArgs() []string {
	args := []string{"status", "-s"}
	if s.branch {
		args = append(args, "-b")
	}
	return args
}

// Probe checks dir for the repository marker and, when present, runs the
// status command inside it. Per-directory failures are reported through the
// result; the error is reserved for conditions that should end the scan.
func (s *Service) Probe(ctx context.Context, dir string) (ProbeResult, error) {
	if !s.IsRepository(dir) {
		s.debugf("skip: %s (no %s directory)", dir, MetadataDir)
		return ProbeResult{Outcome: ProbeNotRepo}, nil
	}

	if _, err := LookupPath(s.gitPath); err != nil {
		s.debugf("error: command not found: %s", s.gitPath)
		return ProbeResult{Outcome: ProbeToolMissing}, nil
	}

	args := s.statusArgs()
	command := s.gitPath + " " + strings.Join(args, " ")
	s.debugf("run: %s (cwd=%s)", command, dir)

	// #nosec G204 -- the git executable comes from local config and arguments are fixed
	cmd := exec.CommandContext(ctx, s.gitPath, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = fmt.Sprintf("exit %d", exitErr.ExitCode())
			}
			s.debugf("error: %s: %s", command, msg)
			return ProbeResult{Outcome: ProbeFailed, Stderr: msg}, nil
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			s.debugf("error: command not found: %s", s.gitPath)
			return ProbeResult{Outcome: ProbeToolMissing}, nil
		default:
			return ProbeResult{}, fmt.Errorf("run %s in %s: %w", command, dir, err)
		}
	}

	out := string(output)
	s.debugf("ok: %s (cwd=%s)", command, dir)
	if s.isClean(out) {
		return ProbeResult{Outcome: ProbeClean, Output: out}, nil
	}
	return ProbeResult{Outcome: ProbeDirty, Output: out}, nil
}

// isClean reports whether the output lists no files. The branch header added
// by -b never counts.
func (s *Service) isClean(out string) bool {
	trimmed := strings.TrimSpace(out)
	if s.branch && strings.HasPrefix(trimmed, "## ") {
		_, rest, _ := strings.Cut(trimmed, "\n")
		trimmed = strings.TrimSpace(rest)
	}
	return trimmed == ""
}
