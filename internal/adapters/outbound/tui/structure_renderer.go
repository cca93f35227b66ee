package tui

import (
	"fmt"
	"strings"

	"github.com/extcheck/extcheck/internal/domain"
)

// RenderStructureReport formats a structure suite run for the terminal:
// header box with the tally, per-section check lines, then the verbatim
// failure and warning lists.
func RenderStructureReport(report *domain.StructureReport) string {
	var b strings.Builder

	title := headerStyle.Render("extcheck")
	subtitle := dimStyle.Render("Extension Structure")
	tally := fmt.Sprintf("%d / %d passed", report.Passed(), report.Total())
	rate := report.SuccessRate()
	tallyStyled := titleStyle.Foreground(rateColor(rate)).Render(tally)
	bar := coloredBar(rate, 24)
	rateLine := fmt.Sprintf("%s %s", bar, dimStyle.Render(fmt.Sprintf("%.1f%%", rate)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + tallyStyled + "\n" + rateLine))
	b.WriteString("\n\n")
	b.WriteString("  " + dimStyle.Render(report.ProjectPath) + "\n\n")

	var section string
	for _, res := range report.Results {
		if res.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = res.Section
			b.WriteString(sectionTitle(section) + "\n")
		}
		renderCheckLine(&b, res)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")

	failures := report.Failures()
	warnings := report.Warnings()

	if len(failures) > 0 {
		b.WriteString("  " + failStyle.Bold(true).Render(fmt.Sprintf("Failures (%d)", len(failures))) + "\n")
		bulletList(&b, failures, failStyle)
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("  " + warnStyle.Bold(true).Render(fmt.Sprintf("Warnings (%d)", len(warnings))) + "\n")
		bulletList(&b, warnings, warnStyle)
		b.WriteString("\n")
	}

	if report.OK() {
		b.WriteString("  " + passStyle.Render("All structure checks passed.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d check(s) failed.", report.Failed())) + "\n")
	}

	return b.String()
}

func renderCheckLine(b *strings.Builder, res domain.CheckResult) {
	var icon string
	switch res.Status {
	case domain.StatusPass:
		icon = passStyle.Render("✓")
	case domain.StatusWarn:
		icon = warnStyle.Render("!")
	default:
		icon = failStyle.Render("✗")
	}

	if res.Detail != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", icon, res.Description, faintStyle.Render(res.Detail))
		return
	}
	fmt.Fprintf(b, "    %s %s\n", icon, res.Description)
}
