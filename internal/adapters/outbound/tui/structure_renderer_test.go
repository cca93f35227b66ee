package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/extcheck/extcheck/internal/adapters/outbound/tui"
	"github.com/extcheck/extcheck/internal/domain"
)

func structureReport(results ...domain.CheckResult) *domain.StructureReport {
	report := &domain.StructureReport{
		ProjectPath:  "/project",
		ExtensionDir: "extension",
	}
	for _, res := range results {
		report.Record(res)
	}
	return report
}

func TestRenderStructureReport_AllPassing(t *testing.T) {
	report := structureReport(
		domain.CheckResult{Section: "manifest", Description: "manifest.json exists", Status: domain.StatusPass},
		domain.CheckResult{Section: "manifest", Description: "manifest.json is valid JSON", Status: domain.StatusPass},
	)

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "extcheck")
	assert.Contains(t, out, "2 / 2 passed")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "manifest.json exists")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "All structure checks passed.")
	assert.NotContains(t, out, "Failures")
}

func TestRenderStructureReport_FailuresEnumerated(t *testing.T) {
	report := structureReport(
		domain.CheckResult{Section: "popup", Description: "popup/popup.css exists", Status: domain.StatusFail},
		domain.CheckResult{Section: "utils", Description: "utils/logger.js declares class Logger", Status: domain.StatusFail, Detail: "file not found: extension/utils/logger.js"},
	)

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Failures (2)")
	assert.Contains(t, out, "popup/popup.css exists")
	assert.Contains(t, out, "utils/logger.js declares class Logger: file not found: extension/utils/logger.js")
	assert.Contains(t, out, "2 check(s) failed.")
}

func TestRenderStructureReport_WarningsSection(t *testing.T) {
	report := structureReport(
		domain.CheckResult{Section: "manifest", Description: "manifest.json exists", Status: domain.StatusPass},
		domain.CheckResult{Section: "icons", Description: "icon files present", Status: domain.StatusWarn, Optional: true, Detail: "missing icons/icon16.png"},
	)

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "Warnings (1)")
	assert.Contains(t, out, "icon files present: missing icons/icon16.png")
	assert.Contains(t, out, "All structure checks passed.", "warnings do not fail the run")
}

func TestRenderStructureReport_SectionHeaders(t *testing.T) {
	report := structureReport(
		domain.CheckResult{Section: "manifest", Description: "a", Status: domain.StatusPass},
		domain.CheckResult{Section: "background", Description: "b", Status: domain.StatusPass},
	)

	out := tui.RenderStructureReport(report)

	assert.Contains(t, out, "manifest")
	assert.Contains(t, out, "background")
}
