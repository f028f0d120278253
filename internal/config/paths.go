package config

import (
	"path/filepath"
)

// AppName names the per-user config and cache directories.
const AppName = "pillrow"

// ProjectFile is the project-level config file name.
const ProjectFile = ".pillrow.yaml"

// ConfigDir returns the per-user configuration directory
func ConfigDir() string {
	return ConfigDirWithPlatform(DefaultPlatform)
}

// ConfigDirWithPlatform allows injecting a custom platform provider for testing
func ConfigDirWithPlatform(platform Platform) string {
	switch platform.OS() {
	case "windows":
		// %APPDATA%\pillrow\
		appData := platform.Getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, AppName)
	case "darwin":
		// ~/Library/Application Support/pillrow/
		home, err := platform.HomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", AppName)
	default:
		// $XDG_CONFIG_HOME/pillrow/ or ~/.config/pillrow/
		if xdg := platform.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, err := platform.HomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", AppName)
	}
}

// CacheDir returns the per-user cache directory holding saved state
func CacheDir() string {
	return CacheDirWithPlatform(DefaultPlatform)
}

// CacheDirWithPlatform allows injecting a custom platform provider for testing
func CacheDirWithPlatform(platform Platform) string {
	switch platform.OS() {
	case "windows":
		// %LOCALAPPDATA%\pillrow\
		localAppData := platform.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			home, _ := platform.HomeDir()
			return filepath.Join(home, "."+AppName)
		}
		return filepath.Join(localAppData, AppName)
	case "darwin":
		// ~/Library/Caches/pillrow/
		home, _ := platform.HomeDir()
		return filepath.Join(home, "Library", "Caches", AppName)
	default:
		// $XDG_CACHE_HOME/pillrow/ or ~/.cache/pillrow/
		if xdg := platform.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName)
		}
		home, _ := platform.HomeDir()
		return filepath.Join(home, ".cache", AppName)
	}
}

// GlobalConfigPath returns the per-user config file path
func GlobalConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultStatePath returns the default toggle state database path
func DefaultStatePath() string {
	return filepath.Join(CacheDir(), "state.db")
}
