// Package config provides centralized configuration constants for metaagent.
// All default values should be defined here to ensure a single source of truth.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/internal/policy"
	"github.com/LMKidston/meta-agent1/internal/recommend"
)

const (
	// ConfigName is the config file base name (".metaagent.yaml").
	ConfigName = ".metaagent"

	// EnvPrefix prefixes every environment override, e.g. METAAGENT_VERBOSE.
	EnvPrefix = "METAAGENT"

	// ProjectDir is the per-project directory holding config, policies and templates.
	ProjectDir = ".metaagent"
)

// Config keys
const (
	KeyVerbose              = "verbose"
	KeyJSONLogs             = "jsonLogs"
	KeyMaxIndustryAdditions = "recommend.maxIndustryAdditions"
	KeyMaxCombined          = "recommend.maxCombined"
	KeyKnowledgeOverlay     = "knowledge.overlay"
	KeyPolicyDir            = "policy.dir"
	KeyPolicyPackage        = "policy.package"
	KeyPolicyEnabled        = "policy.enabled"
	KeyTemplatesDir         = "templates.dir"
	KeyTemplateName         = "templates.default"
	KeyOutputDir            = "output.dir"
)

// Default values for the keys above.
var (
	DefaultPolicyDir    = policy.DefaultPoliciesDir
	DefaultTemplatesDir = filepath.Join(ProjectDir, "templates")
)

const (
	DefaultTemplateName = "agent"
	DefaultOutputDir    = "."
)

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyJSONLogs, false)
	v.SetDefault(KeyMaxIndustryAdditions, recommend.DefaultMaxIndustryAdditions)
	v.SetDefault(KeyMaxCombined, recommend.DefaultMaxCombined)
	v.SetDefault(KeyKnowledgeOverlay, "")
	v.SetDefault(KeyPolicyDir, DefaultPolicyDir)
	v.SetDefault(KeyPolicyPackage, policy.DefaultPolicyPackage)
	v.SetDefault(KeyPolicyEnabled, true)
	v.SetDefault(KeyTemplatesDir, DefaultTemplatesDir)
	v.SetDefault(KeyTemplateName, DefaultTemplateName)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
}
