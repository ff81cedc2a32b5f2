package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/internal/policy"
)

// projectRoot is the detected project root; "" means the working directory.
var projectRoot string

// SetProjectRoot sets the root default project paths are resolved against.
func SetProjectRoot(root string) {
	projectRoot = root
}

// ProjectRoot returns the root set by SetProjectRoot, or "." when unset.
func ProjectRoot() string {
	if projectRoot == "" {
		return "."
	}
	return projectRoot
}

// GetGlobalConfigDir returns the path to the global configuration directory (~/.metaagent).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ProjectDir), nil
}

// GetPoliciesDir returns the directory .rego policies are loaded from.
// Resolution order (first match wins):
// 1. Explicit config via "policy.dir" (Viper/env/flag)
// 2. Project directory: <root>/.metaagent/policies
//
// Relative paths are resolved against the project root.
func GetPoliciesDir() string {
	dir := viper.GetString(KeyPolicyDir)
	switch {
	case dir == "" || dir == DefaultPolicyDir:
		if projectRoot == "" {
			return DefaultPolicyDir
		}
		return policy.GetPoliciesPath(projectRoot)
	default:
		return underRoot(dir)
	}
}

// GetTemplatesDir returns the directory prompt template overrides are read from.
func GetTemplatesDir() string {
	dir := viper.GetString(KeyTemplatesDir)
	if dir == "" {
		dir = DefaultTemplatesDir
	}
	return underRoot(dir)
}

func underRoot(path string) string {
	if projectRoot == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}

// GetKnowledgeOverlay returns the configured overlay file, or "" for none.
// A relative path that does not exist locally is tried under the global dir.
func GetKnowledgeOverlay() string {
	path := viper.GetString(KeyKnowledgeOverlay)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if dir, err := GetGlobalConfigDir(); err == nil {
		global := filepath.Join(dir, path)
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return path
}
