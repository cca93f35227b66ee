package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extcheck/extcheck/internal/domain"
)

func TestBuildRefTree(t *testing.T) {
	m, err := domain.ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	scan := newScan(map[string]string{
		"extension/background/service-worker.js": "class SecureTestingService {}",
		"extension/content/page-monitor.js":      "class PageMonitor {}",
		"extension/content/overlay.css":          ".ste {}",
		"extension/popup/popup.html":             "<!DOCTYPE html><html></html>",
		"extension/icons/icon16.png":             "png",
		"extension/icons/icon32.png":             "png",
		"extension/icons/icon48.png":             "png",
		// icon128.png deliberately absent
		"extension/api/integration-api.js": "class SecureTestingEnvironmentAPI {}",
	})

	tree := domain.BuildRefTree(m, scan, "extension")

	assert.Equal(t, "manifest.json", tree.Label)
	assert.True(t, tree.Present)
	require.Len(t, tree.Children, 5)

	sw := tree.Children[0]
	assert.Equal(t, "service worker", sw.Label)
	assert.Equal(t, "background/service-worker.js", sw.Path)
	assert.True(t, sw.Present)

	cs := tree.Children[1]
	assert.Equal(t, "content script 1", cs.Label)
	require.Len(t, cs.Children, 2, "one js plus one css leaf")
	assert.True(t, cs.Present)

	popup := tree.Children[2]
	assert.Equal(t, "popup", popup.Label)
	assert.True(t, popup.Present)

	icons := tree.Children[3]
	assert.Equal(t, "icons", icons.Label)
	require.Len(t, icons.Children, 4)
	assert.Equal(t, "icon 16x16", icons.Children[0].Label, "icon leaves sorted by size")
	assert.False(t, icons.Present, "missing icon128.png marks the group absent")
	assert.False(t, icons.Children[3].Present)

	war := tree.Children[4]
	assert.Equal(t, "web accessible resources 1", war.Label)
	assert.True(t, war.Present)
}

func TestBuildRefTree_EmptyManifest(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"manifest_version": 3, "name": "X", "version": "1.0"}`))
	require.NoError(t, err)

	tree := domain.BuildRefTree(m, newScan(nil), "extension")
	assert.Empty(t, tree.Children)
	assert.True(t, tree.Present)
}
