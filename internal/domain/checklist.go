package domain

import (
	"fmt"
	"path"
	"unicode"

	"github.com/fatih/camelcase"
)

// Known checklist sections, in report order.
var ValidSections = []string{
	"background", "content", "popup", "admin", "api", "utils",
}

// Checklist is the declarative table that drives the structure suite: which
// files must exist, which class tokens they must declare, and which assets
// are optional. Loaded from .extcheck.yaml with these defaults.
type Checklist struct {
	ExtensionDir        string            `yaml:"extension_dir"        json:"extension_dir"`
	RequiredPermissions []string          `yaml:"required_permissions" json:"required_permissions"`
	SourceFiles         []SourceFileCheck `yaml:"source_files"         json:"source_files"`
	HTMLFiles           []string          `yaml:"html_files"           json:"html_files"`
	IconFiles           []string          `yaml:"icon_files"           json:"icon_files"`
	ExpectedDirs        []string          `yaml:"expected_dirs"        json:"expected_dirs"`
	DemoPage            DemoPage          `yaml:"demo_page"            json:"demo_page"`
}

// SourceFileCheck names one expected source file, the section it reports
// under, and the literal tokens its content must carry.
type SourceFileCheck struct {
	Path    string   `yaml:"path"             json:"path"`
	Section string   `yaml:"section"          json:"section"`
	Class   string   `yaml:"class,omitempty"  json:"class,omitempty"`
	Tokens  []string `yaml:"tokens,omitempty" json:"tokens,omitempty"`
}

// DemoPage names an HTML page outside the extension dir, checked for a
// doctype and a literal marker token.
type DemoPage struct {
	Path   string `yaml:"path"   json:"path"`
	Marker string `yaml:"marker" json:"marker"`
}

// DefaultChecklist returns the built-in checklist for the secure testing
// environment extension layout.
func DefaultChecklist() Checklist {
	return Checklist{
		ExtensionDir: "extension",
		RequiredPermissions: []string{
			"activeTab", "tabs", "storage", "system.cpu", "system.memory",
		},
		SourceFiles: []SourceFileCheck{
			{Path: "background/service-worker.js", Section: "background", Class: "SecureTestingService"},
			{Path: "background/system-monitor.js", Section: "background", Class: "SystemMonitor"},
			{Path: "background/config-manager.js", Section: "background", Class: "ConfigManager"},
			{Path: "content/security-enforcer.js", Section: "content", Class: "SecurityEnforcer"},
			{Path: "content/keyboard-tracker.js", Section: "content", Class: "KeyboardTracker"},
			{Path: "content/page-monitor.js", Section: "content", Class: "PageMonitor"},
			{Path: "popup/popup.html", Section: "popup"},
			{Path: "popup/popup.css", Section: "popup"},
			{Path: "popup/popup.js", Section: "popup", Class: "PopupController"},
			{Path: "admin/admin.html", Section: "admin"},
			{Path: "admin/admin.css", Section: "admin"},
			{Path: "admin/admin.js", Section: "admin", Class: "AdminPanel"},
			{Path: "api/integration-api.js", Section: "api", Class: "SecureTestingEnvironmentAPI",
				Tokens: []string{"window.SecureTestingEnvironment"}},
			{Path: "utils/logger.js", Section: "utils", Class: "Logger"},
			{Path: "utils/api-client.js", Section: "utils", Class: "APIClient"},
		},
		HTMLFiles: []string{"popup/popup.html", "admin/admin.html"},
		IconFiles: []string{
			"icons/icon16.png", "icons/icon32.png",
			"icons/icon48.png", "icons/icon128.png",
		},
		ExpectedDirs: []string{"background", "content", "popup", "icons", "utils"},
		DemoPage:     DemoPage{Path: "demo/index.html", Marker: "STEDemo"},
	}
}

// Sections returns the distinct sections of SourceFiles in order of first
// appearance.
func (c Checklist) Sections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, sf := range c.SourceFiles {
		if !seen[sf.Section] {
			seen[sf.Section] = true
			sections = append(sections, sf.Section)
		}
	}
	return sections
}

// FilesInSection returns the SourceFiles belonging to a section, in
// checklist order.
func (c Checklist) FilesInSection(section string) []SourceFileCheck {
	var files []SourceFileCheck
	for _, sf := range c.SourceFiles {
		if sf.Section == section {
			files = append(files, sf)
		}
	}
	return files
}

// IsHTMLFile reports whether the path is listed for the HTML validity check.
func (c Checklist) IsHTMLFile(p string) bool {
	for _, h := range c.HTMLFiles {
		if h == p {
			return true
		}
	}
	return false
}

// Validate catches typos in a user-supplied checklist before a run.
func (c Checklist) Validate() error {
	if c.ExtensionDir == "" {
		return fmt.Errorf("extension_dir must not be empty")
	}
	if path.IsAbs(c.ExtensionDir) {
		return fmt.Errorf("extension_dir must be relative, got %q", c.ExtensionDir)
	}

	for _, sf := range c.SourceFiles {
		if sf.Path == "" {
			return fmt.Errorf("source file with empty path")
		}
		if !isValidSection(sf.Section) {
			return fmt.Errorf("unknown section %q for %s (valid: %v)", sf.Section, sf.Path, ValidSections)
		}
		if sf.Class != "" && !isPascalCase(sf.Class) {
			return fmt.Errorf("class token %q for %s is not PascalCase", sf.Class, sf.Path)
		}
	}

	if c.DemoPage.Path != "" && c.DemoPage.Marker == "" {
		return fmt.Errorf("demo_page.marker must be set when demo_page.path is set")
	}

	return nil
}

func isValidSection(section string) bool {
	for _, s := range ValidSections {
		if s == section {
			return true
		}
	}
	return false
}

// isPascalCase reports whether every camel-case word of the token starts
// with an uppercase letter (APIClient and Logger both qualify).
func isPascalCase(token string) bool {
	for _, word := range camelcase.Split(token) {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}
