package config

import (
	"os"
	"path/filepath"
)

const (
	ConfigDirEnv   = "ENVDIFF_CONFIG_DIR"
	ConfigSubdir   = "envdiff"
	ConfigFileName = "config.yaml"
)

func ConfigDir() string {
	if d := os.Getenv(ConfigDirEnv); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return filepath.Join(".", ConfigSubdir)
	}
	return filepath.Join(home, ".config", ConfigSubdir)
}

func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
