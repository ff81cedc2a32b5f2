package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/LMKidston/meta-agent1/types"
)

// ErrConfigExists is returned by WriteProjectConfig when a config file is
// already present and force is not set.
var ErrConfigExists = fmt.Errorf("config file already exists")

// ProjectConfigPath returns the project config file path under root.
func ProjectConfigPath(root string) string {
	return filepath.Join(root, ProjectDir, ConfigName+".yaml")
}

// WriteProjectConfig writes cfg as the project config under root and
// creates the policies and templates directories next to it.
func WriteProjectConfig(fs afero.Fs, root string, cfg types.AppConfig, force bool) (string, error) {
	path := ProjectConfigPath(root)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if exists && !force {
		return path, ErrConfigExists
	}

	for _, dir := range []string{
		filepath.Dir(path),
		under(root, cfg.Policy.Dir),
		under(root, cfg.Templates.Dir),
	} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	content := append([]byte("# metaagent project configuration\n"), data...)
	if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func under(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
