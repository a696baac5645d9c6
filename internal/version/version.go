// Package version carries the build version and checks a published manifest
// for newer releases.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Set with -ldflags "-X github.com/jpoz/gitdash/internal/version.Version=..."
var (
	Version = "dev"
	Code    = "0"
)

// Manifest is the published version.json.
type Manifest struct {
	VersionCode  int     `json:"version_code"`
	VersionName  string  `json:"version_name"`
	ReleaseNotes *string `json:"release_notes"`
	DownloadURL  *string `json:"download_url"`
	IsMandatory  bool    `json:"is_mandatory"`
}

// UpdateInfo compares the running build with the manifest.
type UpdateInfo struct {
	Current         string
	Latest          string
	LatestCode      int
	UpdateAvailable bool
	ReleaseNotes    string
	DownloadURL     string
	Mandatory       bool
}

// Checker fetches the manifest.
type Checker struct {
	manifestURL string
	currentName string
	currentCode int
	httpClient  *http.Client
}

// NewChecker creates a Checker for the running build. A nil client gets a
// 10s timeout.
func NewChecker(manifestURL string, httpClient *http.Client) *Checker {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	// an unparseable Code is treated as 0
	code, _ := strconv.Atoi(Code)
	return &Checker{
		manifestURL: manifestURL,
		currentName: Version,
		currentCode: code,
		httpClient:  httpClient,
	}
}

// Check fetches the manifest. Callers may ignore the error; a failed check
// only means no update prompt.
func (c *Checker) Check(ctx context.Context) (*UpdateInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("version: new request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("version: fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("version: unexpected status code %d", resp.StatusCode)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("version: decode manifest: %w", err)
	}

	info := &UpdateInfo{
		Current:    c.currentName,
		Latest:     m.VersionName,
		LatestCode: m.VersionCode,
	}
	if m.VersionCode > c.currentCode {
		info.UpdateAvailable = true
		info.Mandatory = m.IsMandatory
		if m.ReleaseNotes != nil {
			info.ReleaseNotes = *m.ReleaseNotes
		}
		if m.DownloadURL != nil {
			info.DownloadURL = *m.DownloadURL
		}
	}
	return info, nil
}
