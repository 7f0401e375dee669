package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Domain: Configuration Management
// This file contains source discovery, workspace config, and --init

// DefaultFilename is the program name --init creates when none is given.
const DefaultFilename = "main.lps1"

// workspaceFile is where the per-project configuration lives.
const workspaceFile = ".lpsc/workspace.yml"

// searchOrder lists where a program is looked for when no path is given
// and the workspace names no default.
var searchOrder = []string{"main.lps1", "program.lps1", ".lpsc/main.lps1"}

// Workspace is the per-project configuration.
type Workspace struct {
	DefaultSourceFile   string `yaml:"defaultSourceFile"`
	DisableCache        bool   `yaml:"disableCache"`
	CacheExpirationDays int    `yaml:"cacheExpirationDays"`
}

// cacheExpiration converts the configured day count into a duration.
// Zero and negative values fall back to 30 days.
func (w *Workspace) cacheExpiration() time.Duration {
	if w.CacheExpirationDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(w.CacheExpirationDays) * 24 * time.Hour
}

// readWorkspace loads the workspace file. A missing file yields the
// zero configuration, not an error.
func readWorkspace() (*Workspace, error) {
	data, err := os.ReadFile(workspaceFile)
	if os.IsNotExist(err) {
		return &Workspace{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", workspaceFile, err)
	}

	var w Workspace
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", workspaceFile, err)
	}
	return &w, nil
}

// writeWorkspace persists the workspace file, creating .lpsc on demand.
func writeWorkspace(w *Workspace) error {
	if err := os.MkdirAll(filepath.Dir(workspaceFile), 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(workspaceFile), err)
	}

	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("cannot encode workspace config: %w", err)
	}
	if err := os.WriteFile(workspaceFile, data, 0600); err != nil {
		return fmt.Errorf("cannot write %s: %w", workspaceFile, err)
	}
	return nil
}

// FindSourceFile resolves which LPS1 program to operate on: an explicit
// path wins, then the workspace default, then the search order.
func FindSourceFile(filename string) (string, error) {
	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			return "", fmt.Errorf("specified file '%s' not found", filename)
		}
		return filename, nil
	}

	if w, err := readWorkspace(); err == nil && w.DefaultSourceFile != "" {
		if _, err := os.Stat(w.DefaultSourceFile); err != nil {
			return "", fmt.Errorf("workspace default file '%s' not found", w.DefaultSourceFile)
		}
		return w.DefaultSourceFile, nil
	}

	for _, candidate := range searchOrder {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no LPS1 program found - expected one of: %v\nPass the file explicitly or run 'lpsc --init' to create one", searchOrder)
}

// recordDefault stores filename as the workspace default source file.
func recordDefault(filename string) error {
	w, err := readWorkspace()
	if err != nil {
		w = &Workspace{}
	}
	w.DefaultSourceFile = filename
	return writeWorkspace(w)
}

// InitializeProgram writes a starter program. With saveAsDefault, or a
// custom name, the file is also recorded as the workspace default.
func InitializeProgram(filename string, saveAsDefault bool) error {
	target := DefaultFilename
	if filename != "" {
		target = filename
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("program file '%s' already exists", target)
	}

	if dir := filepath.Dir(target); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("cannot create directory '%s': %w", dir, err)
			}
			fmt.Printf("📁 Created directory: %s\n", dir)
		}
	}

	if err := os.WriteFile(target, []byte(starterProgram), 0600); err != nil {
		return fmt.Errorf("cannot write program file: %w", err)
	}
	fmt.Printf("✅ Created %s\n", target)

	if saveAsDefault || (filename != "" && filename != DefaultFilename) {
		if err := recordDefault(target); err != nil {
			fmt.Printf("⚠️  Warning: Failed to save as workspace default: %v\n", err)
		} else {
			fmt.Printf("💾 Saved '%s' as workspace default\n", target)
		}
	}

	fmt.Printf("🚀 Compile it with: lpsc %s %s\n", target, outputName(target))
	return nil
}

// SetWorkspaceDefault validates filename and records it as the default.
func SetWorkspaceDefault(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("specified file '%s' not found", filename)
	}

	if err := recordDefault(filename); err != nil {
		return fmt.Errorf("failed to save workspace configuration: %w", err)
	}

	fmt.Printf("✅ Set workspace default source file to: %s\n", filename)
	fmt.Printf("💾 Saved to %s\n", workspaceFile)
	return nil
}

// outputName derives the C output filename from an LPS1 source name.
func outputName(source string) string {
	return strings.TrimSuffix(source, ".lps1") + ".c"
}

// starterProgram counts from 0 to 4 and prints each number. LPS1 has
// no comment syntax, so the file stays pure tokens.
const starterProgram = `=a0
W a<5 {
    P a
    + a a 1
}
`
