/*
Copyright © 2025 LMKidston
*/
package types

import "github.com/LMKidston/meta-agent1/internal/recommend"

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool             `mapstructure:"verbose" yaml:"verbose,omitempty"`
	JSONLogs  bool             `mapstructure:"jsonLogs" yaml:"jsonLogs,omitempty"`
	Config    string           `mapstructure:"config" yaml:"-"`
	Recommend recommend.Limits `mapstructure:"recommend" yaml:"recommend"`
	Knowledge KnowledgeConfig  `mapstructure:"knowledge" yaml:"knowledge"`
	Policy    PolicyConfig     `mapstructure:"policy" yaml:"policy" validate:"required"`
	Templates TemplatesConfig  `mapstructure:"templates" yaml:"templates" validate:"required"`
	Output    OutputConfig     `mapstructure:"output" yaml:"output"`
}

// KnowledgeConfig points at an optional overlay of archetypes, industries and policies.
type KnowledgeConfig struct {
	Overlay string `mapstructure:"overlay" yaml:"overlay"`
}

// PolicyConfig holds OPA guardrail settings
type PolicyConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir" validate:"required"`
	Package string `mapstructure:"package" yaml:"package" validate:"required"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// TemplatesConfig holds prompt template settings
type TemplatesConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir" validate:"required"`
	Default string `mapstructure:"default" yaml:"default" validate:"required,oneof=agent compact"`
}

// OutputConfig holds where generated prompts are written by default
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}
