package tui

import (
	"fmt"
	"strings"

	"github.com/extcheck/extcheck/internal/domain"
)

// RenderConsistencyReport formats a manifest consistency run: header box,
// per-section confirmation lines, then the results block separating fatal
// issues from warnings, closed by a verdict line.
func RenderConsistencyReport(report *domain.ConsistencyReport) string {
	var b strings.Builder

	title := headerStyle.Render("extcheck")
	subtitle := dimStyle.Render("Manifest Consistency")

	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")
	b.WriteString("  " + dimStyle.Render("validating "+report.ProjectPath) + "\n\n")

	var section string
	for _, entry := range report.Entries {
		if entry.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = entry.Section
			b.WriteString(sectionTitle(section) + "\n")
		}
		fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("✓"), entry.Message)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")
	b.WriteString("  " + titleStyle.Render("Validation Results") + "\n\n")

	if len(report.Issues) > 0 {
		b.WriteString("  " + failStyle.Bold(true).Render(fmt.Sprintf("Critical issues (%d)", len(report.Issues))) + "\n")
		bulletList(&b, issueMessages(report.Issues), failStyle)
		b.WriteString("\n")
	} else {
		b.WriteString("  " + passStyle.Render("No critical issues found.") + "\n\n")
	}

	if len(report.Warnings) > 0 {
		b.WriteString("  " + warnStyle.Bold(true).Render(fmt.Sprintf("Warnings (%d)", len(report.Warnings))) + "\n")
		bulletList(&b, issueMessages(report.Warnings), warnStyle)
		b.WriteString("\n")
	}

	b.WriteString(verdictLine(report) + "\n")

	return b.String()
}

// verdictLine mirrors the three possible outcomes: clean pass, loads with
// warnings, or blocked by critical issues.
func verdictLine(report *domain.ConsistencyReport) string {
	switch {
	case report.OK() && len(report.Warnings) == 0:
		return "  " + passStyle.Render("Extension validation passed. Extension should load properly.")
	case report.OK():
		return "  " + warnStyle.Render("Extension should load, but check warnings above.")
	default:
		return "  " + failStyle.Render(fmt.Sprintf("Extension has %d critical issue(s) that must be fixed.", len(report.Issues)))
	}
}

func issueMessages(issues []domain.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}
