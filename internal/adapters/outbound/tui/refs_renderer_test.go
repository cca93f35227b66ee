package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/extcheck/extcheck/internal/adapters/outbound/tui"
	"github.com/extcheck/extcheck/internal/domain"
)

func TestRenderRefTree(t *testing.T) {
	tree := domain.RefNode{
		Label:   "manifest.json",
		Present: true,
		Children: []domain.RefNode{
			{Label: "service worker", Path: "background/service-worker.js", Present: true},
			{
				Label:   "content script 1",
				Present: false,
				Children: []domain.RefNode{
					{Label: "js", Path: "content/page-monitor.js", Present: false},
				},
			},
		},
	}

	out := tui.RenderRefTree(tree)

	assert.Contains(t, out, "manifest.json")
	assert.Contains(t, out, "service worker")
	assert.Contains(t, out, "background/service-worker.js")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "├─")
	assert.Contains(t, out, "└─")
}

func TestRenderRefTree_NoChildren(t *testing.T) {
	out := tui.RenderRefTree(domain.RefNode{Label: "manifest.json", Present: true})
	assert.Contains(t, out, "manifest.json")
}
