// Package consistency cross-checks manifest.json against the files it
// declares. Fatal issues mean the extension will not load; warnings mean it
// loads with something missing or non-standard.
package consistency

import (
	"strings"

	"github.com/extcheck/extcheck/internal/domain"
)

// Run validates the manifest of the extension under list.ExtensionDir
// against the scanned tree. Only the three load failures (missing dir,
// missing manifest, unparseable JSON) abort the run; every later finding
// accumulates.
func Run(scan *domain.ScanResult, list domain.Checklist) *domain.ConsistencyReport {
	report := &domain.ConsistencyReport{
		ProjectPath:  scan.RootPath,
		ExtensionDir: list.ExtensionDir,
	}

	extDir := list.ExtensionDir

	if !scan.DirExists(extDir) {
		report.AddIssue("structure", extDir, "extension directory does not exist: %s", extDir)
		return report
	}

	manifestPath := domain.ResolveRef(extDir, "manifest.json")
	if !scan.FileExists(manifestPath) {
		report.AddIssue("manifest", "manifest.json", "manifest.json not found")
		return report
	}

	data, err := scan.ReadFile(manifestPath)
	if err != nil {
		report.AddIssue("manifest", "manifest.json", "reading manifest.json: %v", err)
		return report
	}

	m, err := domain.ParseManifest(data)
	if err != nil {
		report.AddIssue("manifest", "manifest.json", "manifest.json has invalid JSON: %v", err)
		return report
	}
	report.Confirm("manifest", "manifest.json is valid JSON")

	checkRequiredFields(report, m)
	checkIcons(report, scan, m, extDir)
	checkServiceWorker(report, scan, m, extDir)
	checkContentScripts(report, scan, m, extDir)
	checkPopup(report, scan, m, extDir)
	logPermissions(report, m)
	checkExpectedDirs(report, scan, list)

	return report
}

func checkRequiredFields(report *domain.ConsistencyReport, m *domain.Manifest) {
	for _, field := range []string{"manifest_version", "name", "version"} {
		if !m.Has(field) {
			report.AddIssue("manifest", "manifest.json", "missing required field in manifest: %s", field)
		}
	}

	// A non-3 version is legal for the browser, so it only warns.
	if m.Has("manifest_version") && m.ManifestVersion != 3 {
		report.AddWarning("manifest", "manifest.json", "manifest version is %d, expected 3", m.ManifestVersion)
	}
}

func checkIcons(report *domain.ConsistencyReport, scan *domain.ScanResult, m *domain.Manifest, extDir string) {
	for _, size := range m.IconSizes() {
		iconPath := m.Icons[size]
		if !scan.FileExists(domain.ResolveRef(extDir, iconPath)) {
			report.AddIssue("icons", iconPath, "icon file not found: %s", iconPath)
			continue
		}
		report.Confirm("icons", "icon %sx%s: %s", size, size, iconPath)
	}
}

func checkServiceWorker(report *domain.ConsistencyReport, scan *domain.ScanResult, m *domain.Manifest, extDir string) {
	sw := m.ServiceWorker()
	if sw == "" {
		return
	}
	if !scan.FileExists(domain.ResolveRef(extDir, sw)) {
		report.AddIssue("background", sw, "service worker not found: %s", sw)
		return
	}
	report.Confirm("background", "service worker: %s", sw)
}

func checkContentScripts(report *domain.ConsistencyReport, scan *domain.ScanResult, m *domain.Manifest, extDir string) {
	for i, cs := range m.ContentScripts {
		report.Confirm("content", "content script %d matches: %s", i+1, strings.Join(cs.Matches, ", "))

		for _, js := range cs.JS {
			if !scan.FileExists(domain.ResolveRef(extDir, js)) {
				report.AddIssue("content", js, "content script JS not found: %s", js)
				continue
			}
			report.Confirm("content", "js: %s", js)
		}

		for _, css := range cs.CSS {
			if !scan.FileExists(domain.ResolveRef(extDir, css)) {
				report.AddIssue("content", css, "content script CSS not found: %s", css)
				continue
			}
			report.Confirm("content", "css: %s", css)
		}
	}
}

func checkPopup(report *domain.ConsistencyReport, scan *domain.ScanResult, m *domain.Manifest, extDir string) {
	popup := m.PopupPage()
	if popup == "" {
		return
	}
	if !scan.FileExists(domain.ResolveRef(extDir, popup)) {
		report.AddIssue("popup", popup, "popup HTML not found: %s", popup)
		return
	}
	report.Confirm("popup", "popup: %s", popup)
}

func logPermissions(report *domain.ConsistencyReport, m *domain.Manifest) {
	report.Confirm("permissions", "permissions: %s", strings.Join(m.Permissions, ", "))
	if len(m.HostPermissions) > 0 {
		report.Confirm("permissions", "host permissions: %s", strings.Join(m.HostPermissions, ", "))
	}
}

// checkExpectedDirs only checks top-level presence; it never recurses into
// directory contents.
func checkExpectedDirs(report *domain.ConsistencyReport, scan *domain.ScanResult, list domain.Checklist) {
	for _, dir := range list.ExpectedDirs {
		if !scan.DirExists(domain.ResolveRef(list.ExtensionDir, dir)) {
			report.AddWarning("structure", dir, "directory not found: %s/", dir)
			continue
		}
		report.Confirm("structure", "directory: %s/", dir)
	}
}
