package config

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/xmazu/envdiff/internal/envfile"
	"github.com/xmazu/envdiff/internal/sensitive"
	"github.com/xmazu/envdiff/internal/storage"
	"github.com/xmazu/envdiff/internal/workspace"
)

type Config struct {
	SensitiveKeys []string `yaml:"sensitive_keys"`
	IgnoreKeys    []string `yaml:"ignore_keys"`
	Strict        bool     `yaml:"strict"`
	ShowValues    bool     `yaml:"show_values"`
	ShowIdentical bool     `yaml:"show_identical"`

	path string
}

// Load returns the project config at the workspace root above dir, else the
// user config, else an empty Config.
func Load(dir string) (*Config, error) {
	root, err := workspace.FindRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("find workspace: %w", err)
	}

	for _, path := range []string{
		filepath.Join(root, workspace.ProjectFileName),
		UserConfigPath(),
	} {
		file := storage.NewYAMLFile(path)
		if !file.Exists() {
			continue
		}
		cfg := &Config{path: path}
		if err := file.Load(cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}
	return &Config{}, nil
}

// LoadFor loads the config that applies to the dotenv file at path: the
// project config of its workspace, else the user config.
func LoadFor(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return Load(filepath.Dir(abs))
}

// Path is the file the config was read from, empty for defaults.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) validate() error {
	for _, p := range c.IgnoreKeys {
		if p == "" {
			return fmt.Errorf("ignore_keys: empty pattern")
		}
	}
	return nil
}

// IgnoreKey reports whether key matches one of the ignore_keys globs.
func (c *Config) IgnoreKey(key string) bool {
	for _, p := range c.IgnoreKeys {
		if ok, _ := doublestar.Match(p, key); ok {
			return true
		}
	}
	return false
}

// Filter drops the ignored keys from f. f is returned as is when nothing is ignored.
func (c *Config) Filter(f *envfile.File) *envfile.File {
	if len(c.IgnoreKeys) == 0 {
		return f
	}
	return f.Without(c.IgnoreKey)
}

func (c *Config) Detector() *sensitive.Detector {
	return sensitive.NewDetector(c.SensitiveKeys...)
}
