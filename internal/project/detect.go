package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// markerDirs are checked in every directory, highest priority first.
var markerDirs = []struct {
	name       string
	markerType MarkerType
}{
	{".metaagent", MarkerMetaAgent},
	{".git", MarkerGit},
}

// Detect implements the Detector interface.
// It walks up the directory tree from startPath. A .metaagent directory
// returns immediately; the nearest .git is remembered as a fallback.
func (d *detector) Detect(startPath string) (*Context, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}

	var gitRoot string
	for dir := absPath; ; {
		for _, m := range markerDirs {
			ok, err := afero.Exists(d.fs, filepath.Join(dir, m.name))
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if m.markerType == MarkerMetaAgent {
				return &Context{RootPath: dir, MarkerType: MarkerMetaAgent}, nil
			}
			if gitRoot == "" {
				gitRoot = dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if gitRoot != "" {
		return &Context{RootPath: gitRoot, MarkerType: MarkerGit}, nil
	}
	return &Context{RootPath: absPath, MarkerType: MarkerNone}, nil
}
