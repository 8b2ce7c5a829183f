// Package config resolves CLI flags plus an optional config file/env
// layer into the fixed set of values the rest of the program needs:
// the search root, hidden-file policy, regex engine, and log level
// (§6 External interfaces). Adapted from the teacher's cmd/root.go
// cobra+viper wiring.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the fully resolved, validated set of startup settings.
type Config struct {
	Root          string
	IncludeHidden bool
	AdvancedRegex bool
	LogLevel      string
}

// Defaults the config file/env layer may supply; flags always win.
func bindDefaults() {
	viper.SetDefault("hidden", false)
	viper.SetDefault("log.level", "info")
}

// Load reads $HOME/.resweep.yaml (if present) plus environment
// variables for two defaults CLI flags don't have to repeat every
// invocation — the hidden-file policy and log level — then overlays
// whatever the flags explicitly set. It arms viper.WatchConfig so
// edits to the file are visible to the *next* invocation; the running
// session's resolved Config is immutable once returned (§3 Lifecycles,
// mirrored at the config layer).
func Load(root string, hiddenFlagSet, hidden bool, advancedRegex bool, logLevelFlagSet bool, logLevel string) (*Config, error) {
	bindDefaults()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".resweep")
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix("RESWEEP")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		viper.WatchConfig()
	}

	resolvedHidden := viper.GetBool("hidden")
	if hiddenFlagSet {
		resolvedHidden = hidden
	}
	resolvedLevel := viper.GetString("log.level")
	if logLevelFlagSet {
		resolvedLevel = logLevel
	}

	abs, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	return &Config{
		Root:          abs,
		IncludeHidden: resolvedHidden,
		AdvancedRegex: advancedRegex,
		LogLevel:      resolvedLevel,
	}, nil
}

// resolveRoot defaults to the working directory and validates that the
// result exists and is a directory, the ConfigError §7 describes.
func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: not a directory", root)
	}
	return root, nil
}
