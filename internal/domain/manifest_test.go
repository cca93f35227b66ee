package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extcheck/extcheck/internal/domain"
)

const sampleManifest = `{
  "manifest_version": 3,
  "name": "Secure Testing Environment",
  "version": "1.2.0",
  "permissions": ["activeTab", "tabs", "storage", "system.cpu", "system.memory"],
  "host_permissions": ["<all_urls>"],
  "background": {"service_worker": "background/service-worker.js"},
  "content_scripts": [
    {"matches": ["<all_urls>"], "js": ["content/page-monitor.js"], "css": ["content/overlay.css"]}
  ],
  "action": {"default_popup": "popup/popup.html"},
  "icons": {"128": "icons/icon128.png", "16": "icons/icon16.png", "48": "icons/icon48.png", "32": "icons/icon32.png"},
  "web_accessible_resources": [{"resources": ["api/integration-api.js"], "matches": ["<all_urls>"]}]
}`

func TestParseManifest_TypedFields(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "Secure Testing Environment", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, 3, m.ManifestVersion)
	assert.Equal(t, "background/service-worker.js", m.ServiceWorker())
	assert.Equal(t, "popup/popup.html", m.PopupPage())
	require.Len(t, m.ContentScripts, 1)
	assert.Equal(t, []string{"content/page-monitor.js"}, m.ContentScripts[0].JS)
	assert.Equal(t, []string{"content/overlay.css"}, m.ContentScripts[0].CSS)
	require.Len(t, m.WebAccessibleResources, 1)
	assert.Equal(t, []string{"api/integration-api.js"}, m.WebAccessibleResources[0].Resources)
}

func TestParseManifest_InvalidJSON(t *testing.T) {
	_, err := domain.ParseManifest([]byte(`{"name": "Broken",`))
	assert.Error(t, err)
}

func TestParseManifest_NonObjectDocument(t *testing.T) {
	_, err := domain.ParseManifest([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestParseManifest_WrongFieldType(t *testing.T) {
	_, err := domain.ParseManifest([]byte(`{"name": "X", "manifest_version": "three"}`))
	assert.Error(t, err)
}

func TestManifest_Has(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"manifest_version": 2, "name": ""}`))
	require.NoError(t, err)

	assert.True(t, m.Has("manifest_version"))
	assert.True(t, m.Has("name"), "empty value still counts as present")
	assert.False(t, m.Has("version"))
}

func TestManifest_HasRequiredFields(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	assert.True(t, m.HasRequiredFields())

	m2, err := domain.ParseManifest([]byte(`{"manifest_version": 2, "name": "X", "version": "1.0"}`))
	require.NoError(t, err)
	assert.False(t, m2.HasRequiredFields(), "manifest_version 2 fails the required-fields check")

	m3, err := domain.ParseManifest([]byte(`{"manifest_version": 3, "name": "", "version": "1.0"}`))
	require.NoError(t, err)
	assert.False(t, m3.HasRequiredFields(), "empty name fails the required-fields check")
}

func TestManifest_Permissions(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	required := []string{"activeTab", "tabs", "storage", "system.cpu", "system.memory"}
	assert.True(t, m.HasPermissions(required))
	assert.Empty(t, m.MissingPermissions(required))

	assert.False(t, m.HasPermissions([]string{"downloads"}))
	assert.Equal(t, []string{"downloads"}, m.MissingPermissions([]string{"storage", "downloads"}))
}

func TestManifest_IconSizesSortedNumerically(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, []string{"16", "32", "48", "128"}, m.IconSizes())
}

func TestManifest_NoBackgroundNoAction(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"manifest_version": 3, "name": "X", "version": "1.0"}`))
	require.NoError(t, err)

	assert.Equal(t, "", m.ServiceWorker())
	assert.Equal(t, "", m.PopupPage())
}
