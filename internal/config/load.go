package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/internal/policy"
	"github.com/LMKidston/meta-agent1/internal/recommend"
	"github.com/LMKidston/meta-agent1/types"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// Load unmarshals v into an AppConfig and validates it.
func Load(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg types.AppConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// DefaultAppConfig returns the configuration SetDefaults describes.
func DefaultAppConfig() types.AppConfig {
	return types.AppConfig{
		Recommend: recommend.DefaultLimits(),
		Policy: types.PolicyConfig{
			Dir:     DefaultPolicyDir,
			Package: policy.DefaultPolicyPackage,
			Enabled: true,
		},
		Templates: types.TemplatesConfig{
			Dir:     DefaultTemplatesDir,
			Default: DefaultTemplateName,
		},
		Output: types.OutputConfig{Dir: DefaultOutputDir},
	}
}
