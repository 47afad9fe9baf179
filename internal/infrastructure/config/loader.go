package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using the fs.FS interface,
// so embedded defaults and on-disk overrides go through the same path.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from an fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads, parses and validates one config file. Any failure is terminal
// for the caller; a Config is never returned partially valid.
func (l *Loader) Load(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}

	return &cfg, nil
}
