package config

import (
	"os"
	"runtime"
)

// Platform answers the lookups that decide where pillrow.yaml and the toggle
// database live. Tests swap DefaultPlatform to pin a home directory and GOOS.
type Platform interface {
	OS() string
	Getenv(key string) string
	HomeDir() (string, error)
}

type hostPlatform struct{}

func (hostPlatform) OS() string               { return runtime.GOOS }
func (hostPlatform) Getenv(key string) string { return os.Getenv(key) }
func (hostPlatform) HomeDir() (string, error) { return os.UserHomeDir() }

// DefaultPlatform backs ConfigDir and CacheDir.
var DefaultPlatform Platform = hostPlatform{}
