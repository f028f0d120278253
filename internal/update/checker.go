// Package update checks GitHub for newer pillrow releases.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// ReleasesURL is the GitHub API endpoint for the latest release
	ReleasesURL = "https://api.github.com/repos/young1lin/pillrow/releases/latest"
	// checkInterval is how often to check for updates
	checkInterval = 24 * time.Hour
)

// UpdateState tracks the last update check.
type UpdateState struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
	OptOut        bool      `json:"opt_out"`
}

// Checker checks for updates.
type Checker struct {
	currentVersion string
	stateFile      string
	releasesURL    string
	httpClient     *http.Client
	now            func() time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithURL points the checker at another releases endpoint.
func WithURL(url string) Option {
	return func(c *Checker) { c.releasesURL = url }
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.httpClient = client }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// NewChecker creates a new update checker keeping its state under stateDir.
func NewChecker(version, stateDir string, opts ...Option) *Checker {
	if stateDir == "" {
		stateDir = filepath.Join(os.TempDir(), "pillrow")
	}

	c := &Checker{
		currentVersion: version,
		stateFile:      filepath.Join(stateDir, "update-state.json"),
		releasesURL:    ReleasesURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns release info if an update is available. It does nothing when
// the user opted out or the last check is less than a day old.
func (c *Checker) Check(ctx context.Context) (*ReleaseInfo, error) {
	state, err := c.loadState()
	if err != nil {
		state = &UpdateState{}
	}

	// Skip if opted out or checked recently
	if state.OptOut || c.now().Sub(state.LastCheck) < checkInterval {
		return nil, nil
	}

	return c.check(ctx, state)
}

// CheckNow fetches the latest release regardless of the last check time.
func (c *Checker) CheckNow(ctx context.Context) (*ReleaseInfo, error) {
	state, err := c.loadState()
	if err != nil {
		state = &UpdateState{}
	}
	return c.check(ctx, state)
}

func (c *Checker) check(ctx context.Context, state *UpdateState) (*ReleaseInfo, error) {
	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := parseVersion(release.TagName)
	state.LastCheck = c.now()
	state.LatestVersion = latest
	_ = c.saveState(state)

	if c.needsUpdate(latest) {
		return release, nil
	}

	return nil, nil
}

// fetchLatest fetches the latest release from GitHub.
func (c *Checker) fetchLatest(ctx context.Context) (*ReleaseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "pillrow")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

// needsUpdate returns true if the current version is older than the latest.
func (c *Checker) needsUpdate(latest string) bool {
	// Dev version always needs update
	if c.currentVersion == "dev" {
		return true
	}

	currentV, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return false
	}

	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}

	return latestV.GreaterThan(currentV)
}

// parseVersion extracts semantic version from tag name (e.g., "v1.2.3" -> "1.2.3").
func parseVersion(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// loadState loads the update state from disk.
func (c *Checker) loadState() (*UpdateState, error) {
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &UpdateState{}, nil
		}
		return nil, err
	}

	var state UpdateState
	if err := json.Unmarshal(data, &state); err != nil {
		return &UpdateState{}, nil
	}

	return &state, nil
}

// saveState saves the update state to disk.
func (c *Checker) saveState(state *UpdateState) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.stateFile, data, 0644)
}

// SetOptOut sets the opt-out preference for update checks.
func (c *Checker) SetOptOut(optOut bool) error {
	state, err := c.loadState()
	if err != nil {
		state = &UpdateState{}
	}
	state.OptOut = optOut
	return c.saveState(state)
}
