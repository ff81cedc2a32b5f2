package policy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultPoliciesDir is the policies directory relative to the project root.
var DefaultPoliciesDir = filepath.Join(".metaagent", "policies")

// PolicyFile represents a loaded Rego policy file.
type PolicyFile struct {
	// Path is the path the policy was loaded from.
	Path string `json:"path"`
	// Name is the base name of the file without extension.
	Name string `json:"name"`
	// Content is the raw Rego source code.
	Content string `json:"content"`
}

// Loader scans and loads .rego policy files from a directory on an afero.Fs.
type Loader struct {
	fs      afero.Fs
	baseDir string
}

// NewLoader creates a new policy loader using the provided filesystem.
func NewLoader(fs afero.Fs, baseDir string) *Loader {
	return &Loader{
		fs:      fs,
		baseDir: baseDir,
	}
}

// LoadAll loads all .rego files under the directory, recursively, sorted by
// path. A missing directory means no policies.
func (l *Loader) LoadAll() ([]*PolicyFile, error) {
	paths, err := l.ListFiles()
	if err != nil {
		return nil, err
	}

	policies := make([]*PolicyFile, 0, len(paths))
	for _, path := range paths {
		policy, err := l.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load policy %s: %w", path, err)
		}
		policies = append(policies, policy)
	}
	return policies, nil
}

// LoadFile reads a single policy file.
func (l *Loader) LoadFile(path string) (*PolicyFile, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return &PolicyFile{
		Path:    path,
		Name:    strings.TrimSuffix(filepath.Base(path), ".rego"),
		Content: string(content),
	}, nil
}

// ListFiles returns the paths of all .rego files in the policies directory.
func (l *Loader) ListFiles() ([]string, error) {
	exists, err := afero.DirExists(l.fs, l.baseDir)
	if err != nil {
		return nil, fmt.Errorf("check policies directory: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	var paths []string
	err = afero.Walk(l.fs, l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".rego") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk policies directory: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// GetPoliciesPath returns the policies directory for a project root.
func GetPoliciesPath(projectRoot string) string {
	return filepath.Join(projectRoot, DefaultPoliciesDir)
}
