package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Manifest is the typed view of a WebExtension manifest.json. A raw field map
// is retained alongside the typed fields so presence checks can distinguish
// an absent key from a zero value.
type Manifest struct {
	Name                   string                  `json:"name"`
	Version                string                  `json:"version"`
	ManifestVersion        int                     `json:"manifest_version"`
	Description            string                  `json:"description,omitempty"`
	Background             *Background             `json:"background,omitempty"`
	ContentScripts         []ContentScript         `json:"content_scripts,omitempty"`
	Permissions            []string                `json:"permissions,omitempty"`
	HostPermissions        []string                `json:"host_permissions,omitempty"`
	Action                 *Action                 `json:"action,omitempty"`
	Icons                  map[string]string       `json:"icons,omitempty"`
	WebAccessibleResources []WebAccessibleResource `json:"web_accessible_resources,omitempty"`

	raw map[string]json.RawMessage
}

// Background declares the extension's background entry point.
type Background struct {
	ServiceWorker string `json:"service_worker"`
}

// ContentScript is one match-pattern group of injected JS/CSS files.
type ContentScript struct {
	Matches []string `json:"matches"`
	JS      []string `json:"js,omitempty"`
	CSS     []string `json:"css,omitempty"`
	RunAt   string   `json:"run_at,omitempty"`
}

// Action declares the toolbar action, including the popup page.
type Action struct {
	DefaultPopup string `json:"default_popup,omitempty"`
	DefaultTitle string `json:"default_title,omitempty"`
}

// WebAccessibleResource is one group of files the extension exposes to pages.
type WebAccessibleResource struct {
	Resources []string `json:"resources"`
	Matches   []string `json:"matches,omitempty"`
}

// ParseManifest decodes manifest.json bytes. Non-object documents and fields
// with a mismatched JSON type are parse errors.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	m.raw = raw

	return &m, nil
}

// Has reports whether the named top-level key is present in the document,
// regardless of its value.
func (m *Manifest) Has(field string) bool {
	_, ok := m.raw[field]
	return ok
}

// HasRequiredFields reports whether the manifest carries a non-empty name,
// a non-empty version, and manifest_version 3.
func (m *Manifest) HasRequiredFields() bool {
	return m.Name != "" && m.Version != "" && m.ManifestVersion == 3
}

// HasPermissions reports whether every required permission is requested.
func (m *Manifest) HasPermissions(required []string) bool {
	granted := make(map[string]bool, len(m.Permissions))
	for _, p := range m.Permissions {
		granted[p] = true
	}
	for _, r := range required {
		if !granted[r] {
			return false
		}
	}
	return true
}

// MissingPermissions returns the required permissions not requested, in the
// required order.
func (m *Manifest) MissingPermissions(required []string) []string {
	var missing []string
	for _, r := range required {
		if !m.HasPermissions([]string{r}) {
			missing = append(missing, r)
		}
	}
	return missing
}

// IconSizes returns the declared icon sizes sorted numerically, so icon
// checks run in a deterministic order. Non-numeric sizes sort last,
// lexically.
func (m *Manifest) IconSizes() []string {
	sizes := make([]string, 0, len(m.Icons))
	for s := range m.Icons {
		sizes = append(sizes, s)
	}
	sort.Slice(sizes, func(i, j int) bool {
		a, errA := strconv.Atoi(sizes[i])
		b, errB := strconv.Atoi(sizes[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return sizes[i] < sizes[j]
		}
	})
	return sizes
}

// ServiceWorker returns the declared service worker path, or "" when the
// manifest declares no background entry.
func (m *Manifest) ServiceWorker() string {
	if m.Background == nil {
		return ""
	}
	return m.Background.ServiceWorker
}

// PopupPage returns the declared popup path, or "" when no action popup is
// declared.
func (m *Manifest) PopupPage() string {
	if m.Action == nil {
		return ""
	}
	return m.Action.DefaultPopup
}

// String identifies the manifest in diagnostics.
func (m *Manifest) String() string {
	return fmt.Sprintf("%s v%s (manifest_version %d)", m.Name, m.Version, m.ManifestVersion)
}
