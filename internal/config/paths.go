// Package config manages toolplan configuration and filesystem paths.
//
// Configuration lives under a single root directory, ~/.toolplan by default,
// which can be moved with the TOOLPLAN_ROOT environment variable. The root
// holds config.yaml, an optional toolsets.yaml that replaces the built-in
// mode catalog, and a locales/ directory of extra language files. Nothing
// under the root is required; every file falls back to built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by toolplan.
type Paths struct {
	// Root is the base directory for all toolplan data (default: ~/.toolplan)
	Root string

	// Config is the path to the global config file
	Config string

	// Toolsets is the path to the optional mode catalog override
	Toolsets string

	// Locales is the directory searched for <lang>.yaml locale files
	Locales string
}

// DefaultPaths returns the default paths for toolplan.
// Paths can be overridden with environment variables:
// - TOOLPLAN_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TOOLPLAN_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".toolplan")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Config:   filepath.Join(root, "config.yaml"),
		Toolsets: filepath.Join(root, "toolsets.yaml"),
		Locales:  filepath.Join(root, "locales"),
	}
}
