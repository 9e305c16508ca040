// Package config resolves runtime settings from defaults, an optional config
// file, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default file and directory names under the user's profile directory.
const (
	appDir         = ".pkgseek"
	configFileName = "config.toml"
	bucketsDirName = "buckets"
	indexFileName  = "index.json"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// BucketsRoot is the directory containing one subdirectory per bucket.
	BucketsRoot string
	// IndexPath is the location of the persisted JSON index.
	IndexPath string
	// RefreshCommand is the external command run to synchronize buckets
	// before a reconciliation retry. Empty disables refreshing.
	RefreshCommand string
}

// Load resolves the configuration. Precedence, lowest to highest: built-in
// defaults under the user home, the optional config file, and PKGSEEK_*
// environment variables.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	base := filepath.Join(home, appDir)

	v := viper.New()
	v.SetDefault("buckets_root", filepath.Join(base, bucketsDirName))
	v.SetDefault("index_path", filepath.Join(base, indexFileName))
	v.SetDefault("refresh_command", "pkgseek-sync")

	v.SetEnvPrefix("PKGSEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(filepath.Join(base, configFileName))
	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; anything else is a real error.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		BucketsRoot:    v.GetString("buckets_root"),
		IndexPath:      v.GetString("index_path"),
		RefreshCommand: v.GetString("refresh_command"),
	}, nil
}
