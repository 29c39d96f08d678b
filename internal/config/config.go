// Package config loads walrsctl's configuration, grounded line-for-line on
// the teacher's internal/cli/config.go: same precedence (flags > env >
// config file > defaults), same walk-up-to-.git discovery, same
// viper-backed defaults/env-binding machinery.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const maxWalkDepth = 25

// Config is the walrsctl configuration, loaded from walrs.yaml/walrs.yml.
type Config struct {
	// ACL names the ACL data file and its Load*/Format it decodes with.
	ACL DataSourceConfig `mapstructure:"acl"`

	// RBAC names the RBAC data file and its Load*/Format it decodes with.
	RBAC DataSourceConfig `mapstructure:"rbac"`

	Doctor DoctorConfig `mapstructure:"doctor"`
}

// DataSourceConfig names a data file and its encoding.
type DataSourceConfig struct {
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // "json" or "yaml"
}

// DoctorConfig holds doctor command settings.
type DoctorConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none
// found), and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("WALRS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("acl.file", "acl.yaml")
	v.SetDefault("acl.format", "yaml")
	v.SetDefault("rbac.file", "rbac.yaml")
	v.SetDefault("rbac.format", "yaml")
	v.SetDefault("doctor.verbose", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for walrs.yaml or walrs.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"walrs.yaml", "walrs.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
