package prompts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PromptKey identifies a prompt template.
type PromptKey string

const (
	// KeyAgentPrompt is the full agent configuration prompt.
	KeyAgentPrompt PromptKey = "agent"
	// KeyCompactPrompt is the one-paragraph agent prompt.
	KeyCompactPrompt PromptKey = "compact"
)

// ErrUnknownTemplate is returned for keys that are not registered.
var ErrUnknownTemplate = errors.New("unrecognized prompt key")

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[PromptKey]promptConfig{
	KeyAgentPrompt: {
		defaultContent: AgentPromptTemplate,
		filename:       "agent_prompt.tmpl",
	},
	KeyCompactPrompt: {
		defaultContent: CompactPromptTemplate,
		filename:       "compact_prompt.tmpl",
	},
}

// Keys returns the registered prompt keys.
func Keys() []PromptKey {
	return []PromptKey{KeyAgentPrompt, KeyCompactPrompt}
}

// GetTemplate returns the override file from templatesDir when it exists,
// and the built-in template otherwise.
func GetTemplate(fs afero.Fs, key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTemplate, key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPath := filepath.Join(templatesDir, config.filename)
	content, err := afero.ReadFile(fs, customPath)
	if err == nil {
		slog.Info("using custom prompt template", "path", customPath)
		return string(content), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read custom prompt template %s: %w", customPath, err)
	}
	return config.defaultContent, nil
}
