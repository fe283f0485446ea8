package config

import (
	"fmt"
	"os/exec"
	"strings"
)

const gitConfigPrefix = "rs."

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string) (string, error)

// runGitConfig executes git config and returns raw output.
func runGitConfig(args []string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args)
	}

	output, err := exec.Command("git", args...).Output()
	if err != nil {
		// git config exits 1 when no key matches
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// parseGitConfigOutput parses "rs.key value" lines into a multi-value map.
func parseGitConfigOutput(output string) map[string][]string {
	configMap := make(map[string][]string)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			// Boolean keys written as "[rs] showBranch" have no value.
			key, value = line, "true"
		}
		key = strings.TrimPrefix(key, gitConfigPrefix)
		configMap[key] = append(configMap[key], value)
	}
	return configMap
}

// loadGitConfig reads global "rs.*" keys. Git prints key names lowercased.
func loadGitConfig() (map[string]any, error) {
	output, err := runGitConfig([]string{"config", "--global", "--get-regexp", `^rs\.`})
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	for key, values := range parseGitConfigOutput(output) {
		if len(values) == 0 {
			continue
		}
		// Last value wins, matching git's own precedence.
		result[normalizeKey(key)] = values[len(values)-1]
	}
	return result, nil
}

// normalizeKey maps git-style keys ("showbranch", "show-branch") onto the
// snake_case names the YAML file uses.
func normalizeKey(key string) string {
	key = strings.ReplaceAll(strings.ToLower(key), "-", "_")
	switch key {
	case "gitpath":
		return "git_path"
	case "debuglog":
		return "debug_log"
	case "gitfilerepos":
		return "gitfile_repos"
	case "showbranch":
		return "show_branch"
	}
	return key
}

// parseCLIConfigOverrides parses --config=rs.key=value into a map for applyConfigData.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		fullKey, value, ok := strings.Cut(override, "=")
		if !ok {
			return nil, fmt.Errorf("invalid config override: %q, expected format: rs.key=value (note: use = not space)", override)
		}
		if !strings.HasPrefix(fullKey, gitConfigPrefix) {
			return nil, fmt.Errorf("config override key must start with '%s': %q", gitConfigPrefix, fullKey)
		}
		key := strings.TrimPrefix(fullKey, gitConfigPrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		result[normalizeKey(key)] = value
	}

	return result, nil
}
