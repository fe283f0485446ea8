// Package config loads repostatus configuration from YAML, git config and
// command line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/repostatus/internal/theme"
	"gopkg.in/yaml.v3"
)

// AppConfig defines the repostatus configuration options.
type AppConfig struct {
	Theme        string // Palette name: see AvailableThemes in internal/theme
	Color        string // "auto", "always" or "never"
	GitPath      string // git executable used for status probes
	DebugLog     string
	GitFileRepos bool // Accept a ".git" file (linked worktrees, submodules) as a repository marker
	ShowBranch   bool // Print the branch header next to each repository name
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:   theme.DefaultName(),
		Color:   string(theme.ColorAuto),
		GitPath: "git",
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// applyConfigData overlays the keys present in data onto cfg.
// Unknown keys and invalid values are ignored.
func applyConfigData(cfg *AppConfig, data map[string]any) {
	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if color, ok := data["color"].(string); ok {
		if mode, err := theme.ParseColorMode(color); err == nil {
			cfg.Color = string(mode)
		}
	}

	if gitPath, ok := data["git_path"].(string); ok {
		gitPath = strings.TrimSpace(gitPath)
		if gitPath != "" {
			cfg.GitPath = gitPath
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}

	if _, ok := data["gitfile_repos"]; ok {
		cfg.GitFileRepos = coerceBool(data["gitfile_repos"], cfg.GitFileRepos)
	}
	if _, ok := data["show_branch"]; ok {
		cfg.ShowBranch = coerceBool(data["show_branch"], cfg.ShowBranch)
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	applyConfigData(cfg, data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the YAML configuration file and layers the global
// "rs.*" git config keys over it.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := filepath.Clean(filepath.Join(getConfigDir(), "repostatus"))

	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	data := map[string]any{}
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(raw, &yamlData); err != nil {
			return DefaultConfig(), nil
		}
		for k, v := range yamlData {
			data[k] = v
		}
		break
	}

	gitData, err := loadGitConfig()
	if err == nil {
		for k, v := range gitData {
			data[k] = v
		}
	}

	return parseConfig(data), nil
}

// ApplyCLIOverrides applies repeatable --config=rs.key=value overrides.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	applyConfigData(c, data)
	return nil
}

// ExpandHome expands a leading "~" to the user's home directory. Anything
// else, "$" included, is left alone.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ExpandPath expands a leading "~" to the user's home directory and then
// any environment variables.
func ExpandPath(path string) (string, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	return os.ExpandEnv(path), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical palette name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
