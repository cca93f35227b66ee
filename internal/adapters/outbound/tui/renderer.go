package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── Warm palette shared by all report renderers ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

func coloredBar(pct float64, width int) string {
	filled := int(pct) * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	color := rateColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func rateColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 40:
		return warning
	default:
		return danger
	}
}

func sectionTitle(name string) string {
	return "  " + sectionStyle.Render(name)
}

func bulletList(b *strings.Builder, items []string, style lipgloss.Style) {
	for _, item := range items {
		fmt.Fprintf(b, "    %s %s\n", style.Render("-"), dimStyle.Render(item))
	}
}
