// Package config loads ropen settings from a YAML file, ROPEN_* environment
// variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appName = "ropen"

// Config is the resolved configuration.
type Config struct {
	StorePath string
	LogLevel  string
	LogFile   string

	Clamp    string
	PageStep int

	Exclude []string
	Hidden  bool

	Editor string

	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads configuration. An explicit path must exist; without one the
// default location is tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROPEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{
		StorePath: v.GetString("store.path"),
		LogLevel:  v.GetString("log.level"),
		LogFile:   v.GetString("log.file"),
		Clamp:     v.GetString("navigation.clamp"),
		PageStep:  v.GetInt("navigation.page_step"),
		Exclude:   v.GetStringSlice("collect.exclude"),
		Hidden:    v.GetBool("collect.hidden"),
		Editor:    v.GetString("open.editor"),
		File:      v.ConfigFileUsed(),
	}
	if cfg.PageStep <= 0 {
		return nil, fmt.Errorf("config: navigation.page_step must be positive, got %d", cfg.PageStep)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", filepath.Join(stateDir(), "settings.db"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", filepath.Join(stateDir(), appName+".log"))
	v.SetDefault("navigation.clamp", "edge")
	v.SetDefault("navigation.page_step", 10)
	v.SetDefault("collect.exclude", []string{".git", "node_modules", ".hg", ".svn"})
	v.SetDefault("collect.hidden", false)
	v.SetDefault("open.editor", "")
}

// stateDir follows XDG_STATE_HOME, falling back to ~/.local/state.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", appName)
	}
	return filepath.Join(os.TempDir(), appName)
}
