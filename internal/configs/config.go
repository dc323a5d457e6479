package configs

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default configuration values.
const (
	DefaultGitTimeoutSeconds = 300
	DefaultTrashDirName      = ".trash"
	DefaultLockFileName      = "cenv-init.lock"
)

// Config holds cenv settings merged from the config file and environment.
type Config struct {
	// GitTimeoutSeconds bounds clone and push operations.
	GitTimeoutSeconds int `toml:"git_timeout"`

	// TrashDirName is the directory under the envs root holding deleted
	// environments. Usually should not be changed.
	TrashDirName string `toml:"trash_dir_name"`

	// LockFileName is the init lock file name under the home directory.
	// Usually should not be changed.
	LockFileName string `toml:"lock_file_name"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		GitTimeoutSeconds: DefaultGitTimeoutSeconds,
		TrashDirName:      DefaultTrashDirName,
		LockFileName:      DefaultLockFileName,
	}
}

// GitTimeout returns the git timeout as a duration.
func (c *Config) GitTimeout() time.Duration {
	return time.Duration(c.GitTimeoutSeconds) * time.Second
}

// ConfigFilePath returns the cenv config file location under the user
// config directory.
func ConfigFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cenv", "config.toml"), nil
}

// LoadConfig loads configuration with the following precedence, highest
// first: CENV_* environment variables, the config file, built-in defaults.
// A missing or malformed config file falls back to defaults rather than
// failing; cenv must stay usable without any configuration at all.
func LoadConfig() *Config {
	configPath, err := ConfigFilePath()
	if err != nil {
		configPath = ""
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom is LoadConfig with an explicit config file path.
func LoadConfigFrom(configPath string) *Config {
	config := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			fileConfig := DefaultConfig()
			if err := LoadTOML(configPath, fileConfig); err == nil {
				config = fileConfig
			}
		}
	}

	if v := os.Getenv("CENV_GIT_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			config.GitTimeoutSeconds = seconds
		}
	}

	if config.GitTimeoutSeconds <= 0 {
		config.GitTimeoutSeconds = DefaultGitTimeoutSeconds
	}
	if config.TrashDirName == "" {
		config.TrashDirName = DefaultTrashDirName
	}
	if config.LockFileName == "" {
		config.LockFileName = DefaultLockFileName
	}

	return config
}
