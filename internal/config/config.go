// Package config loads Seclume's effective configuration: built-in
// defaults, overridden by an optional YAML config file, overridden by an
// optional named profile within that file. CLI flags are layered on top of
// whatever this package returns.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvConfigPath is the environment variable naming an explicit config
	// file path.
	EnvConfigPath = "SECLUME_CONFIG"
	// EnvProfile names a profile within that config file.
	EnvProfile = "SECLUME_PROFILE"
)

// EffectiveConfig is the merged configuration a CLI invocation starts from.
type EffectiveConfig struct {
	AuditLog          string `mapstructure:"audit_log" json:"audit_log"`
	CompressionAlgo   string `mapstructure:"compression_algo" json:"compression_algo"`
	CompressionLevel  int    `mapstructure:"compression_level" json:"compression_level"`
	OutputDir         string `mapstructure:"output_dir" json:"output_dir"`
	AllowWeakPassword bool   `mapstructure:"allow_weak_password" json:"allow_weak_password"`
}

// Profile holds profile-specific overrides layered onto EffectiveConfig.
type Profile struct {
	AuditLog          string `mapstructure:"audit_log"`
	CompressionAlgo   string `mapstructure:"compression_algo"`
	CompressionLevel  int    `mapstructure:"compression_level"`
	OutputDir         string `mapstructure:"output_dir"`
	AllowWeakPassword bool   `mapstructure:"allow_weak_password"`
}

// ConfigFile represents the root config file structure: optional base keys
// plus named profiles.
type ConfigFile struct {
	EffectiveConfig `mapstructure:",squash"`
	Profiles        map[string]Profile `mapstructure:"profiles"`
}

// DefaultEffective returns Seclume's built-in defaults: DEFLATE at level 1,
// extraction targets the current directory, and the password policy is
// enforced unless a profile or flag relaxes it.
func DefaultEffective() EffectiveConfig {
	return EffectiveConfig{
		CompressionAlgo:   "deflate",
		CompressionLevel:  1,
		OutputDir:         ".",
		AllowWeakPassword: false,
	}
}

var loaded *EffectiveConfig

// Load reads config from the given path (or discovers it), applies the
// given profile, and caches the result for Get. An explicit configPath
// always wins over SECLUME_CONFIG; an explicit profile always wins over
// SECLUME_PROFILE. A missing config file is not an error — Seclume falls
// back to its built-in defaults.
func Load(configPath, profile string) (*EffectiveConfig, error) {
	base := DefaultEffective()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if profile == "" {
		profile = os.Getenv(EnvProfile)
	}

	if configPath != "" {
		if err := readAndMerge(configPath, profile, &base); err != nil {
			return nil, err
		}
	} else {
		home, _ := os.UserHomeDir()
		var candidates []string
		if home != "" {
			candidates = append(candidates, filepath.Join(home, ".seclume.yaml"), filepath.Join(home, ".seclume.yml"))
		}
		if wd, err := os.Getwd(); err == nil {
			candidates = append(candidates, filepath.Join(wd, ".seclume.yaml"), filepath.Join(wd, ".seclume.yml"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				if err := readAndMerge(p, profile, &base); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	loaded = &base
	return loaded, nil
}

func readAndMerge(path, profile string, base *EffectiveConfig) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist) {
			return nil
		}
		if errors.As(err, new(viper.ConfigFileNotFoundError)) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if v.IsSet("audit_log") {
		base.AuditLog = v.GetString("audit_log")
	}
	if v.IsSet("compression_algo") {
		base.CompressionAlgo = v.GetString("compression_algo")
	}
	if v.IsSet("compression_level") {
		base.CompressionLevel = v.GetInt("compression_level")
	}
	if v.IsSet("output_dir") {
		base.OutputDir = v.GetString("output_dir")
	}
	if v.IsSet("allow_weak_password") {
		base.AllowWeakPassword = v.GetBool("allow_weak_password")
	}

	if profile != "" && v.IsSet("profiles") {
		profiles := v.GetStringMap("profiles")
		if p, ok := profiles[profile].(map[string]interface{}); ok {
			if s, ok := p["audit_log"].(string); ok && s != "" {
				base.AuditLog = s
			}
			if s, ok := p["compression_algo"].(string); ok && s != "" {
				base.CompressionAlgo = s
			}
			if n, ok := p["compression_level"].(int); ok {
				base.CompressionLevel = n
			}
			if s, ok := p["output_dir"].(string); ok && s != "" {
				base.OutputDir = s
			}
			if b, ok := p["allow_weak_password"].(bool); ok {
				base.AllowWeakPassword = b
			}
		}
	}

	return nil
}

// Get returns the loaded effective config, or nil if Load was never called.
func Get() *EffectiveConfig {
	return loaded
}

// SetLoaded overrides the cached config. Exposed for tests.
func SetLoaded(c *EffectiveConfig) {
	loaded = c
}
