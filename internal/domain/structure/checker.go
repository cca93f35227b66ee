// Package structure runs the fixed structural checklist against an extension
// tree. Every check always executes; a predicate error becomes that check's
// failure detail and never aborts the remaining checks.
package structure

import (
	"fmt"
	"strings"

	"github.com/extcheck/extcheck/internal/domain"
)

const (
	doctypeToken = "<!DOCTYPE html>"
	htmlTagToken = "<html"
)

// Check pairs a report description with a zero-argument predicate. The
// predicate returns false for a plain failure or an error when its input is
// unreadable; the runner converts both into a recorded result.
type Check struct {
	Section     string
	Description string
	Optional    bool
	Run         func() (bool, error)
}

// Run executes the checklist-derived check table against the scan and
// returns the ordered report.
func Run(scan *domain.ScanResult, list domain.Checklist) *domain.StructureReport {
	report := &domain.StructureReport{
		ProjectPath:  scan.RootPath,
		ExtensionDir: list.ExtensionDir,
	}

	for _, c := range BuildChecks(scan, list) {
		report.Record(execute(c))
	}

	return report
}

func execute(c Check) domain.CheckResult {
	res := domain.CheckResult{
		Section:     c.Section,
		Description: c.Description,
		Optional:    c.Optional,
		Status:      domain.StatusPass,
	}

	ok, err := c.Run()
	switch {
	case err != nil:
		res.Status = domain.StatusFail
		res.Detail = err.Error()
	case !ok:
		res.Status = domain.StatusFail
	}

	if c.Optional && res.Status == domain.StatusFail {
		res.Status = domain.StatusWarn
	}

	return res
}

// BuildChecks assembles the ordered check table: manifest field checks,
// per-section source file checks, manifest reference checks, the optional
// icon check, and the demo page checks.
func BuildChecks(scan *domain.ScanResult, list domain.Checklist) []Check {
	b := &builder{scan: scan, list: list}

	b.manifestChecks()
	for _, section := range list.Sections() {
		b.sectionChecks(section)
	}
	b.referenceChecks()
	b.iconCheck()
	b.demoChecks()

	return b.checks
}

type builder struct {
	scan   *domain.ScanResult
	list   domain.Checklist
	checks []Check
}

func (b *builder) add(section, description string, run func() (bool, error)) {
	b.checks = append(b.checks, Check{Section: section, Description: description, Run: run})
}

func (b *builder) addOptional(section, description string, run func() (bool, error)) {
	b.checks = append(b.checks, Check{Section: section, Description: description, Optional: true, Run: run})
}

// ext resolves a checklist path against the extension dir.
func (b *builder) ext(rel string) string {
	return domain.ResolveRef(b.list.ExtensionDir, rel)
}

// manifest re-reads and re-parses manifest.json. Each manifest check loads
// independently so a broken manifest fails every dependent check on its own
// terms, exactly like per-check reads would.
func (b *builder) manifest() (*domain.Manifest, error) {
	data, err := b.scan.ReadFile(b.ext("manifest.json"))
	if err != nil {
		return nil, err
	}
	return domain.ParseManifest(data)
}

func (b *builder) manifestChecks() {
	b.add("manifest", "manifest.json exists", func() (bool, error) {
		return b.scan.FileExists(b.ext("manifest.json")), nil
	})

	b.add("manifest", "manifest.json is valid JSON", func() (bool, error) {
		_, err := b.manifest()
		if err != nil {
			return false, err
		}
		return true, nil
	})

	b.add("manifest", "manifest declares required fields", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		return m.HasRequiredFields(), nil
	})

	b.add("manifest", "manifest declares a background service worker", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		return m.ServiceWorker() != "", nil
	})

	b.add("manifest", "manifest declares content scripts", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		return len(m.ContentScripts) > 0, nil
	})

	b.add("manifest", "manifest requests required permissions", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		if missing := m.MissingPermissions(b.list.RequiredPermissions); len(missing) > 0 {
			return false, fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
		return true, nil
	})
}

// sectionChecks emits existence checks for every file in the section, then
// class/token content checks, then HTML validity checks.
func (b *builder) sectionChecks(section string) {
	files := b.list.FilesInSection(section)

	for _, sf := range files {
		rel := sf.Path
		b.add(section, fmt.Sprintf("%s exists", rel), func() (bool, error) {
			return b.scan.FileExists(b.ext(rel)), nil
		})
	}

	for _, sf := range files {
		if sf.Class == "" {
			continue
		}
		rel, class := sf.Path, sf.Class
		b.add(section, fmt.Sprintf("%s declares class %s", rel, class), func() (bool, error) {
			return b.scan.Contains(b.ext(rel), "class "+class)
		})
	}

	for _, sf := range files {
		for _, token := range sf.Tokens {
			rel, tok := sf.Path, token
			b.add(section, fmt.Sprintf("%s references %s", rel, tok), func() (bool, error) {
				return b.scan.Contains(b.ext(rel), tok)
			})
		}
	}

	for _, sf := range files {
		if !b.list.IsHTMLFile(sf.Path) {
			continue
		}
		rel := sf.Path
		b.add(section, fmt.Sprintf("%s is valid HTML", rel), func() (bool, error) {
			return b.validHTML(b.ext(rel))
		})
	}
}

func (b *builder) validHTML(full string) (bool, error) {
	hasDoctype, err := b.scan.Contains(full, doctypeToken)
	if err != nil {
		return false, err
	}
	hasTag, err := b.scan.Contains(full, htmlTagToken)
	if err != nil {
		return false, err
	}
	return hasDoctype && hasTag, nil
}

// referenceChecks validate that paths declared inside the manifest resolve
// to existing files.
func (b *builder) referenceChecks() {
	b.add("references", "manifest background service worker exists", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		sw := m.ServiceWorker()
		if sw == "" {
			return false, fmt.Errorf("no service worker declared")
		}
		return b.scan.FileExists(b.ext(sw)), nil
	})

	b.add("references", "manifest content script files exist", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		if len(m.ContentScripts) == 0 {
			return false, fmt.Errorf("no content scripts declared")
		}
		for _, js := range m.ContentScripts[0].JS {
			if !b.scan.FileExists(b.ext(js)) {
				return false, fmt.Errorf("%s not found", js)
			}
		}
		return true, nil
	})

	b.add("references", "manifest popup page exists", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		popup := m.PopupPage()
		if popup == "" {
			return false, fmt.Errorf("no popup declared")
		}
		return b.scan.FileExists(b.ext(popup)), nil
	})

	b.add("references", "manifest web accessible resources exist", func() (bool, error) {
		m, err := b.manifest()
		if err != nil {
			return false, err
		}
		if len(m.WebAccessibleResources) == 0 {
			return false, fmt.Errorf("no web accessible resources declared")
		}
		for _, res := range m.WebAccessibleResources[0].Resources {
			if !b.scan.FileExists(b.ext(res)) {
				return false, fmt.Errorf("%s not found", res)
			}
		}
		return true, nil
	})
}

func (b *builder) iconCheck() {
	if len(b.list.IconFiles) == 0 {
		return
	}
	b.addOptional("icons", "icon files present", func() (bool, error) {
		var missing []string
		for _, icon := range b.list.IconFiles {
			if !b.scan.FileExists(b.ext(icon)) {
				missing = append(missing, icon)
			}
		}
		if len(missing) > 0 {
			return false, fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
		return true, nil
	})
}

// demoChecks resolve the demo page against the project root, not the
// extension dir.
func (b *builder) demoChecks() {
	demo := b.list.DemoPage
	if demo.Path == "" {
		return
	}

	b.add("demo", "demo page exists", func() (bool, error) {
		return b.scan.FileExists(demo.Path), nil
	})

	b.add("demo", "demo page is valid HTML", func() (bool, error) {
		hasDoctype, err := b.scan.Contains(demo.Path, doctypeToken)
		if err != nil {
			return false, err
		}
		hasMarker, err := b.scan.Contains(demo.Path, demo.Marker)
		if err != nil {
			return false, err
		}
		return hasDoctype && hasMarker, nil
	})
}
