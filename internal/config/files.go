package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default_config.toml
var defaultConfig []byte

// EnvConfig pins the config file location.
const EnvConfig = "TRUMPARR_CONFIG"

const fileName = "config.toml"

var (
	// ErrNotFound is returned by Discover when no candidate file exists.
	ErrNotFound = errors.New("config file not found")
	// ErrExists is returned by WriteDefault instead of overwriting a file.
	ErrExists = errors.New("config file already exists")
)

// DefaultPath is where `config init` writes when given no path.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "trumparr", fileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "trumparr", fileName)
	}
	return fileName
}

// candidates are checked in order: the working directory, the directory
// holding the binary, then DefaultPath.
func candidates() []string {
	paths := []string{fileName}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), fileName))
	}
	return append(paths, DefaultPath())
}

// Discover returns the config file to load. A path set in TRUMPARR_CONFIG
// must exist; otherwise the first existing candidate wins.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s: %w", EnvConfig, err)
		}
		return p, nil
	}

	paths := candidates()
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (looked in %s)", ErrNotFound, strings.Join(paths, ", "))
}

// WriteDefault writes the commented example config, creating parent
// directories. The file holds API keys so it is private to the user.
// An existing file is kept unless overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err != nil {
		return err
	}
	if _, err := f.Write(defaultConfig); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
