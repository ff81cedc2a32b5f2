// Package project detects the project root metaagent works in.
//
// Detection walks up from the starting directory:
//  1. A .metaagent/ directory wins immediately.
//  2. Otherwise the nearest .git marks the root.
//  3. With neither, the starting directory is used.
package project

import "github.com/spf13/afero"

// MarkerType represents the type of project marker that was detected.
type MarkerType int

const (
	// MarkerNone indicates no project marker was found.
	MarkerNone MarkerType = iota

	// MarkerMetaAgent indicates a .metaagent directory was found (highest priority).
	MarkerMetaAgent

	// MarkerGit indicates a .git directory was found.
	MarkerGit
)

// String returns a human-readable name for the marker type.
func (m MarkerType) String() string {
	switch m {
	case MarkerNone:
		return "none"
	case MarkerMetaAgent:
		return ".metaagent"
	case MarkerGit:
		return ".git"
	default:
		return "unknown"
	}
}

// Context describes the detected project boundary.
type Context struct {
	// RootPath is the absolute path to the detected project root.
	RootPath string

	// MarkerType indicates which marker was used to identify the project root.
	MarkerType MarkerType
}

// HasMetaAgentDir returns true if the project already has a .metaagent directory.
func (c *Context) HasMetaAgentDir() bool {
	return c.MarkerType == MarkerMetaAgent
}

// Detector defines the interface for project detection.
type Detector interface {
	// Detect finds the project root starting from the given path.
	Detect(startPath string) (*Context, error)
}

// detector implements Detector using an afero filesystem.
type detector struct {
	fs afero.Fs
}

// NewDetector creates a new Detector using the provided filesystem.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewDetector(fs afero.Fs) Detector {
	return &detector{fs: fs}
}

// Detect detects the project root from the given path using the OS filesystem.
func Detect(startPath string) (*Context, error) {
	return NewDetector(afero.NewOsFs()).Detect(startPath)
}
