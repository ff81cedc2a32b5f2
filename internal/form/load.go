package form

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads answers from a .json file, or from YAML for any other extension.
func Load(fs afero.Fs, path string) (Answers, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Answers{}, fmt.Errorf("read answers %s: %w", path, err)
	}

	var a Answers
	if isJSON(path) {
		err = json.Unmarshal(data, &a)
	} else {
		err = yaml.Unmarshal(data, &a)
	}
	if err != nil {
		return Answers{}, fmt.Errorf("parse answers %s: %w", path, err)
	}
	return a, nil
}

// Save writes answers in the format implied by the path's extension.
func Save(fs afero.Fs, path string, a Answers) error {
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(a, "", "  ")
	} else {
		data, err = yaml.Marshal(a)
	}
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("write answers %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
