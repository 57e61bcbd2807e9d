// Package config reads the optional neoui.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up from the working directory.
const FileName = "neoui.yaml"

// Config represents the optional neoui.yaml configuration.
//
//	theme: themes/studio.yaml
//	out_dir: previews
//	dark: true
type Config struct {
	Theme  string `yaml:"theme,omitempty"`
	OutDir string `yaml:"out_dir,omitempty"`
	Dark   bool   `yaml:"dark,omitempty"`
}

// Resolved contains the configuration with paths made absolute.
type Resolved struct {
	// Root is the directory holding neoui.yaml, or "" when none was found.
	Root      string
	ThemePath string
	OutDir    string
	Dark      bool
}

// LoadOptional reads neoui.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// FindProjectRoot walks up from dir to the directory holding neoui.yaml.
// The walk stops at the enclosing Go module root or the filesystem root;
// "" means no project file applies.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve finds and loads the project file that applies to dir.
// Relative paths in the file are taken relative to the file.
func Resolve(dir string) (*Resolved, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return &Resolved{}, nil
	}

	cfg, err := LoadOptional(root)
	if err != nil {
		return nil, err
	}
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	return &Resolved{
		Root:      root,
		ThemePath: abs(cfg.Theme),
		OutDir:    abs(cfg.OutDir),
		Dark:      cfg.Dark,
	}, nil
}
