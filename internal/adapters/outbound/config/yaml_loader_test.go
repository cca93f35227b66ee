package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/extcheck/extcheck/internal/adapters/outbound/config"
	"github.com/extcheck/extcheck/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".extcheck.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	list, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultChecklist(), list)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
extension_dir: ext
required_permissions:
  - storage
`)
	loader := appconfig.New()

	list, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ext", list.ExtensionDir)
	assert.Equal(t, []string{"storage"}, list.RequiredPermissions)
}

func TestYAMLLoader_UnsetFieldsInheritDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `extension_dir: ext`)
	loader := appconfig.New()

	list, err := loader.Load(dir)
	require.NoError(t, err)

	defaults := domain.DefaultChecklist()
	assert.Equal(t, defaults.RequiredPermissions, list.RequiredPermissions)
	assert.Equal(t, defaults.SourceFiles, list.SourceFiles)
	assert.Equal(t, defaults.IconFiles, list.IconFiles)
	assert.Equal(t, defaults.DemoPage, list.DemoPage)
}

func TestYAMLLoader_SourceFilesReplaceEntirely(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
source_files:
  - path: main.js
    section: background
    class: Main
`)
	loader := appconfig.New()

	list, err := loader.Load(dir)
	require.NoError(t, err)
	require.Len(t, list.SourceFiles, 1)
	assert.Equal(t, "main.js", list.SourceFiles[0].Path)
	assert.Equal(t, "Main", list.SourceFiles[0].Class)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .extcheck.yaml")
}

func TestYAMLLoader_InvalidChecklist(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
source_files:
  - path: main.js
    section: nonsense
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .extcheck.yaml")
}
