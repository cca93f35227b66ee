package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/extcheck/extcheck/internal/domain"
)

const fileName = ".extcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .extcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .extcheck.yaml from projectPath. Returns the default checklist
// when the file does not exist; fields left unset in the file inherit their
// defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.Checklist, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultChecklist(), nil
		}
		return domain.Checklist{}, err
	}

	var override domain.Checklist
	if err := yaml.Unmarshal(data, &override); err != nil {
		return domain.Checklist{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	list := mergeChecklist(domain.DefaultChecklist(), override)

	if err := list.Validate(); err != nil {
		return domain.Checklist{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return list, nil
}

// mergeChecklist overlays explicit overrides on top of the defaults.
// Explicit (non-zero) values always win; lists replace entirely.
func mergeChecklist(base, override domain.Checklist) domain.Checklist {
	result := base

	if override.ExtensionDir != "" {
		result.ExtensionDir = override.ExtensionDir
	}
	if len(override.RequiredPermissions) > 0 {
		result.RequiredPermissions = override.RequiredPermissions
	}
	if len(override.SourceFiles) > 0 {
		result.SourceFiles = override.SourceFiles
	}
	if len(override.HTMLFiles) > 0 {
		result.HTMLFiles = override.HTMLFiles
	}
	if len(override.IconFiles) > 0 {
		result.IconFiles = override.IconFiles
	}
	if len(override.ExpectedDirs) > 0 {
		result.ExpectedDirs = override.ExpectedDirs
	}
	if override.DemoPage.Path != "" {
		result.DemoPage = override.DemoPage
	}

	return result
}
