package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// fakePlatform is a Platform with canned answers
type fakePlatform struct {
	os      string
	env     map[string]string
	home    string
	homeErr error
}

func (f fakePlatform) OS() string               { return f.os }
func (f fakePlatform) Getenv(key string) string { return f.env[key] }
func (f fakePlatform) HomeDir() (string, error) {
	return f.home, f.homeErr
}

func TestConfigDirWithPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform fakePlatform
		want     string
	}{
		{
			name:     "windows appdata",
			platform: fakePlatform{os: "windows", env: map[string]string{"APPDATA": `C:\Users\me\AppData\Roaming`}},
			want:     filepath.Join(`C:\Users\me\AppData\Roaming`, "pillrow"),
		},
		{
			name:     "windows without appdata",
			platform: fakePlatform{os: "windows"},
			want:     "",
		},
		{
			name:     "darwin",
			platform: fakePlatform{os: "darwin", home: "/Users/me"},
			want:     filepath.Join("/Users/me", "Library", "Application Support", "pillrow"),
		},
		{
			name:     "linux",
			platform: fakePlatform{os: "linux", home: "/home/me"},
			want:     filepath.Join("/home/me", ".config", "pillrow"),
		},
		{
			name:     "linux xdg",
			platform: fakePlatform{os: "linux", home: "/home/me", env: map[string]string{"XDG_CONFIG_HOME": "/xdg"}},
			want:     filepath.Join("/xdg", "pillrow"),
		},
		{
			name:     "linux no home",
			platform: fakePlatform{os: "linux", homeErr: errors.New("no home")},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirWithPlatform(tt.platform); got != tt.want {
				t.Errorf("ConfigDirWithPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCacheDirWithPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform fakePlatform
		want     string
	}{
		{
			name:     "windows localappdata",
			platform: fakePlatform{os: "windows", env: map[string]string{"LOCALAPPDATA": `C:\Local`}},
			want:     filepath.Join(`C:\Local`, "pillrow"),
		},
		{
			name:     "windows fallback to home",
			platform: fakePlatform{os: "windows", home: `C:\Users\me`},
			want:     filepath.Join(`C:\Users\me`, ".pillrow"),
		},
		{
			name:     "darwin",
			platform: fakePlatform{os: "darwin", home: "/Users/me"},
			want:     filepath.Join("/Users/me", "Library", "Caches", "pillrow"),
		},
		{
			name:     "linux",
			platform: fakePlatform{os: "linux", home: "/home/me"},
			want:     filepath.Join("/home/me", ".cache", "pillrow"),
		},
		{
			name:     "linux xdg",
			platform: fakePlatform{os: "linux", env: map[string]string{"XDG_CACHE_HOME": "/xdg-cache"}},
			want:     filepath.Join("/xdg-cache", "pillrow"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CacheDirWithPlatform(tt.platform); got != tt.want {
				t.Errorf("CacheDirWithPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	if got := DefaultStatePath(); !strings.HasSuffix(got, "state.db") {
		t.Errorf("DefaultStatePath() = %q, want suffix state.db", got)
	}
	if got := GlobalConfigPath(); got != "" && !strings.HasSuffix(got, "config.yaml") {
		t.Errorf("GlobalConfigPath() = %q, want suffix config.yaml", got)
	}
}
