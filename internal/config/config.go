// Package config resolves the managed root directory for grm.
//
// The root is looked up in priority order, first hit wins:
//
//  1. GRM_ROOT environment variable
//  2. ~/.grmrc (TOML, key "root")
//  3. ~/.gitconfig (key "grm.root")
//  4. default: ~/grm
//
// A missing source falls through to the next provider; a source that exists
// but fails to parse aborts the lookup. Relative paths from any source are
// resolved against the home directory, not the working directory, so the
// root stays stable regardless of where grm is invoked.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gopasspw/gitconfig"
)

// EnvRoot is the environment variable overriding the managed root.
const EnvRoot = "GRM_ROOT"

// gitConfigKey is the ~/.gitconfig key holding the managed root.
const gitConfigKey = "grm.root"

// Config holds the resolved grm settings.
type Config struct {
	// Root is the managed root directory, always absolute.
	Root string
}

// provider tries one configuration source. It returns "" when the source is
// absent and an error when the source is present but unusable.
type provider func() (string, error)

// Load resolves the managed root from the provider chain.
func Load() (Config, error) {
	providers := []provider{envRoot, grmrcRoot, gitConfigRoot, defaultRoot}

	for _, p := range providers {
		root, err := p()
		if err != nil {
			return Config{}, err
		}
		if root != "" {
			return Config{Root: root}, nil
		}
	}
	// defaultRoot always yields a value.
	return Config{}, fmt.Errorf("no configuration source produced a root")
}

func envRoot() (string, error) {
	value, ok := os.LookupEnv(EnvRoot)
	if !ok {
		return "", nil
	}
	root, err := normalizeRoot(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", EnvRoot, err)
	}
	return root, nil
}

// grmrcFile is the TOML structure of ~/.grmrc.
type grmrcFile struct {
	Root string `toml:"root"`
}

func grmrcRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(home, ".grmrc")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var rc grmrcFile
	if err := toml.Unmarshal(data, &rc); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	if rc.Root == "" {
		return "", nil
	}

	root, err := normalizeRoot(rc.Root)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func gitConfigRoot() (string, error) {
	cfg := gitconfig.New()
	cfg.LoadAll("")

	value := cfg.GetGlobal(gitConfigKey)
	if value == "" {
		return "", nil
	}

	root, err := normalizeRoot(value)
	if err != nil {
		return "", fmt.Errorf("gitconfig %s: %w", gitConfigKey, err)
	}
	return root, nil
}

func defaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "grm"), nil
}

// normalizeRoot turns a configured root value into an absolute path.
// "~" and "~/..." expand to the home directory; absolute paths are kept;
// relative paths are resolved against home.
func normalizeRoot(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty root path")
	}

	if filepath.IsAbs(value) {
		return filepath.Clean(value), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch {
	case value == "~":
		return home, nil
	case strings.HasPrefix(value, "~/"):
		return filepath.Join(home, value[2:]), nil
	case strings.HasPrefix(value, "~"):
		return "", fmt.Errorf("unsupported path %q: use an absolute path or ~/path", value)
	default:
		return filepath.Join(home, value), nil
	}
}
