// Package config loads the optional nest.yml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file name without extension.
const FileName = "nest"

// Built-in defaults, used for keys the file leaves out.
const (
	DefaultTarget        = "my-app"
	DefaultCommitMessage = "Initial scaffold"
)

// Config is the scaffolder's settings.
type Config struct {
	DefaultTarget string
	Verbose       bool
	Git           GitConfig

	// Source is the file the settings came from, empty for built-in defaults.
	Source string
}

// GitConfig controls the post-scaffold git bootstrap.
type GitConfig struct {
	Enabled       bool
	CommitMessage string
}

// Load reads nest.yml from the working directory, then from
// <user config dir>/nest. A missing file yields the defaults.
func Load() (*Config, error) {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "nest"))
	}
	return LoadFrom(paths...)
}

// LoadFrom reads nest.yml from the first of paths that has one.
// Environment variables are never consulted.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("default_target", DefaultTarget)
	v.SetDefault("verbose", false)
	v.SetDefault("git.enabled", true)
	v.SetDefault("git.commit_message", DefaultCommitMessage)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yml: %w", FileName, err)
		}
	}

	cfg := &Config{
		DefaultTarget: strings.TrimSpace(v.GetString("default_target")),
		Verbose:       v.GetBool("verbose"),
		Git: GitConfig{
			Enabled:       v.GetBool("git.enabled"),
			CommitMessage: strings.TrimSpace(v.GetString("git.commit_message")),
		},
		Source: v.ConfigFileUsed(),
	}

	if cfg.DefaultTarget == "" {
		return nil, fmt.Errorf("default_target in %s must not be empty", cfg.Source)
	}
	if cfg.Git.CommitMessage == "" {
		cfg.Git.CommitMessage = DefaultCommitMessage
	}

	return cfg, nil
}
