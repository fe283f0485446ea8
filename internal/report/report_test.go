package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/chmouel/repostatus/internal/git"
	"github.com/chmouel/repostatus/internal/models"
	"github.com/chmouel/repostatus/internal/scan"
	"github.com/chmouel/repostatus/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	results map[string]git.ProbeResult
	errs    map[string]error
	calls   []string
}

func (f *fakeProber) Probe(_ context.Context, dir string) (git.ProbeResult, error) {
	f.calls = append(f.calls, filepath.Base(dir))
	if err := f.errs[filepath.Base(dir)]; err != nil {
		return git.ProbeResult{}, err
	}
	return f.results[filepath.Base(dir)], nil
}

func plainStyles(buf *bytes.Buffer) Styles {
	return NewStyles(theme.NewRenderer(buf, theme.ColorNever, false), theme.ANSI())
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o750))
	}
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRunMixedRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "clean", "dirty", "plain")

	prober := &fakeProber{results: map[string]git.ProbeResult{
		"clean": {Outcome: git.ProbeClean},
		"dirty": {Outcome: git.ProbeDirty, Output: " M main.go\n?? notes.txt\n"},
		"plain": {Outcome: git.ProbeNotRepo},
	}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, prober, plainStyles(&buf)).Run(context.Background(), root))

	assert.Equal(t, []string{
		"✓ " + filepath.Join(root, "clean"),
		"✗ " + filepath.Join(root, "dirty"),
		"    M main.go",
		"    + notes.txt",
		"'" + filepath.Join(root, "plain") + "' is not a git repository.",
	}, outputLines(&buf))
}

func TestRunRootNotFound(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	prober := &fakeProber{}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, prober, plainStyles(&buf)).Run(context.Background(), root))

	assert.Equal(t, []string{"Error: Root folder '" + root + "' does not exist."}, outputLines(&buf))
	assert.Empty(t, prober.calls)
}

func TestRunContinuesAfterPerDirectoryFailures(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a-broken", "b-nogit", "c-clean")

	prober := &fakeProber{results: map[string]git.ProbeResult{
		"a-broken": {Outcome: git.ProbeFailed, Stderr: "fatal: bad object HEAD"},
		"b-nogit":  {Outcome: git.ProbeToolMissing},
		"c-clean":  {Outcome: git.ProbeClean},
	}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, prober, plainStyles(&buf)).Run(context.Background(), root))

	assert.Equal(t, []string{
		"Error: git status failed in '" + filepath.Join(root, "a-broken") + "': fatal: bad object HEAD",
		"Error: git command not found.",
		"✓ " + filepath.Join(root, "c-clean"),
	}, outputLines(&buf))
	assert.Equal(t, []string{"a-broken", "b-nogit", "c-clean"}, prober.calls)
}

func TestRunUnexpectedErrorEndsScan(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a", "b")

	boom := errors.New("boom")
	prober := &fakeProber{
		results: map[string]git.ProbeResult{"b": {Outcome: git.ProbeClean}},
		errs:    map[string]error{"a": boom},
	}

	var buf bytes.Buffer
	err := New(&buf, prober, plainStyles(&buf)).Run(context.Background(), root)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, buf.String())
	assert.Equal(t, []string{"a"}, prober.calls)
}

func TestRunCancelledContext(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := New(&buf, &fakeProber{}, plainStyles(&buf)).Run(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestInspect(t *testing.T) {
	entry := scan.Entry{Name: "repo", Path: "/src/repo"}

	t.Run("dirty output parsed", func(t *testing.T) {
		prober := &fakeProber{results: map[string]git.ProbeResult{
			"repo": {Outcome: git.ProbeDirty, Output: "AM new.go\nD  gone.go\n"},
		}}
		rep, err := New(nil, prober, Styles{}).Inspect(context.Background(), entry)
		require.NoError(t, err)
		assert.Equal(t, models.StateDirty, rep.State)
		assert.True(t, rep.Dirty())
		assert.Equal(t, []models.StatusEntry{
			{Code: "AM", Path: "new.go"},
			{Code: "D ", Path: "gone.go"},
		}, rep.Entries)
	})

	t.Run("branch header split off", func(t *testing.T) {
		prober := &fakeProber{results: map[string]git.ProbeResult{
			"repo": {Outcome: git.ProbeClean, Output: "## main\n"},
		}}
		rep, err := New(nil, prober, Styles{}, WithBranch(true)).Inspect(context.Background(), entry)
		require.NoError(t, err)
		assert.Equal(t, models.StateClean, rep.State)
		assert.Equal(t, "main", rep.Branch)
		assert.Empty(t, rep.Entries)
	})

	t.Run("unknown outcome", func(t *testing.T) {
		prober := &fakeProber{results: map[string]git.ProbeResult{
			"repo": {Outcome: git.ProbeOutcome(99)},
		}}
		_, err := New(nil, prober, Styles{}).Inspect(context.Background(), entry)
		require.Error(t, err)
	})
}

func TestRenderDirtyEntries(t *testing.T) {
	rep := &models.RepoReport{
		Name:   "repo",
		State:  models.StateDirty,
		Branch: "feature...origin/feature [ahead 2]",
		Entries: []models.StatusEntry{
			{Code: "R ", Path: "old.go -> new.go"},
			{Code: "C ", Path: "copy.go"},
			{Code: "UU", Path: "conflict.go"},
			{Raw: "?"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, &fakeProber{}, plainStyles(&buf)).Render(rep))

	assert.Equal(t, []string{
		"✗ repo (feature...origin/feature [ahead 2])",
		"    R old.go -> new.go",
		"    C copy.go",
		"    UU conflict.go",
		"    ?",
	}, outputLines(&buf))
}

func TestRenderUncheckedFails(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, &fakeProber{}, plainStyles(&buf)).Render(&models.RepoReport{Name: "x"})
	require.Error(t, err)
}

func TestRenderToolName(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, &fakeProber{}, plainStyles(&buf), WithToolName("/opt/git"))
	require.NoError(t, r.Render(&models.RepoReport{State: models.StateToolMissing}))
	assert.Equal(t, "Error: /opt/git command not found.\n", buf.String())
}

func TestRenderColors(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(theme.NewRenderer(&buf, theme.ColorAlways, false), theme.ANSI())
	rep := &models.RepoReport{
		Name:    "repo",
		State:   models.StateDirty,
		Entries: []models.StatusEntry{{Code: " M", Path: "a.go"}},
	}

	require.NoError(t, New(&buf, &fakeProber{}, styles).Render(rep))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "a.go")
}

// TestRunWithGitScript drives the real prober against a fake git binary.
func TestRunWithGitScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake git script requires a POSIX shell")
	}

	calls := filepath.Join(t.TempDir(), "calls")
	gitPath := filepath.Join(t.TempDir(), "git")
	script := `#!/bin/sh
basename "$PWD" >> '` + calls + `'
case "$(basename "$PWD")" in
dirty) printf ' M changed.txt\n?? new.txt\n' ;;
esac
`
	require.NoError(t, os.WriteFile(gitPath, []byte(script), 0o700)) //nolint:gosec

	root := t.TempDir()
	mkdirs(t, root, "clean/.git", "dirty/.git", "plain")

	var buf bytes.Buffer
	r := New(&buf, git.NewService(gitPath), plainStyles(&buf))
	require.NoError(t, r.Run(context.Background(), root))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "✓ "))
	assert.Equal(t, 1, strings.Count(out, "✗ "))
	assert.Equal(t, 1, strings.Count(out, "is not a git repository."))
	assert.Contains(t, out, "✗ "+filepath.Join(root, "dirty")+"\n    M changed.txt\n    + new.txt\n")

	// #nosec G304 -- path comes from t.TempDir()
	recorded, err := os.ReadFile(calls)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"clean", "dirty"}, strings.Fields(string(recorded)))
}

func TestRunBrokenMarkerDoesNotEndScan(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	mkdirs(t, root, "a", "b")
	require.NoError(t, os.Symlink(".git", filepath.Join(root, "a", ".git")))

	var buf bytes.Buffer
	r := New(&buf, git.NewService("git"), plainStyles(&buf))
	require.NoError(t, r.Run(context.Background(), root))

	assert.Equal(t, []string{
		"'" + filepath.Join(root, "a") + "' is not a git repository.",
		"'" + filepath.Join(root, "b") + "' is not a git repository.",
	}, outputLines(&buf))
}
