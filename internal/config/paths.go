package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Settings file location inside a study directory.
const (
	ConfigDirName  = ".lpicstudy"
	ConfigFileName = "config.yml"
)

// ErrNotFound indicates no settings file exists at or above the start directory.
var ErrNotFound = errors.New("config not found")

// ConfigPath returns the settings file of a study directory.
func ConfigPath(studyDir string) string {
	return filepath.Join(studyDir, ConfigDirName, ConfigFileName)
}

// StudyDir returns the directory a settings file belongs to. A relative
// questions_file is resolved against it.
func StudyDir(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath returns the nearest settings file at or above startDir,
// which defaults to the working directory.
func FindConfigPath(startDir string) (string, error) {
	start, err := absDir(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := ConfigPath(dir)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return "", fmt.Errorf("config path %q is a directory", candidate)
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("stat config path %q: %w", candidate, err)
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or its parents", ErrNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

func absDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}
