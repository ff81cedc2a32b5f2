/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/project"
	"github.com/LMKidston/meta-agent1/types"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig = config.DefaultAppConfig()

// InitConfig reads in config file and ENV variables if set.
func InitConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the config file.
	viper.SetEnvPrefix(config.EnvPrefix) // e.g., METAAGENT_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		// Project config in <root>/.metaagent/ wins over $HOME and the working directory.
		if proj, err := project.NewDetector(appFs).Detect("."); err == nil && proj.HasMetaAgentDir() {
			config.SetProjectRoot(proj.RootPath)
			viper.AddConfigPath(filepath.Join(proj.RootPath, config.ProjectDir))
		} else {
			config.SetProjectRoot("")
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgFileFlag == "" && errors.As(err, &notFound):
			slog.Debug("no config file found, using defaults and environment variables")
		case cfgFileFlag != "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)):
			return types.NewCLIError(types.CodeNotFound, "config file not found: "+cfgFileFlag, err)
		default:
			return types.NewCLIError(types.CodeInvalidInput, "cannot read config file "+viper.ConfigFileUsed(), err)
		}
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return types.NewCLIError(types.CodeInvalidInput, "invalid configuration", err)
	}
	GlobalAppConfig = cfg
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after config file, environment (METAAGENT_*) and
defaults have been merged.`,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if isJSON() {
		return printJSON(cmd, map[string]any{
			"source":      configSource(),
			"projectRoot": config.ProjectRoot(),
			"config":      cfg,
		})
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	cmd.Printf("# source: %s\n# project root: %s\n%s", configSource(), config.ProjectRoot(), out)
	return nil
}

func configSource() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return "defaults"
}
