package tui

import (
	"fmt"
	"strings"

	"github.com/extcheck/extcheck/internal/domain"
)

// RenderRefTree formats the manifest reference tree with branch lines and a
// present/missing glyph per node.
func RenderRefTree(root domain.RefNode) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render(root.Label) + "\n")
	renderRefChildren(&b, root.Children, "  ")

	return b.String()
}

func renderRefChildren(b *strings.Builder, nodes []domain.RefNode, prefix string) {
	for i, node := range nodes {
		last := i == len(nodes)-1

		branch := "├─"
		childPrefix := prefix + "│  "
		if last {
			branch = "└─"
			childPrefix = prefix + "   "
		}

		fmt.Fprintf(b, "%s%s %s %s\n",
			prefix,
			faintStyle.Render(branch),
			refGlyph(node),
			refLabel(node),
		)

		renderRefChildren(b, node.Children, childPrefix)
	}
}

func refGlyph(node domain.RefNode) string {
	if node.Present {
		return passStyle.Render("✓")
	}
	return failStyle.Render("✗")
}

func refLabel(node domain.RefNode) string {
	if node.Path == "" {
		return node.Label
	}
	return fmt.Sprintf("%s %s", node.Label, dimStyle.Render(node.Path))
}
