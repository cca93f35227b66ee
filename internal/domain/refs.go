package domain

import "fmt"

// RefNode is one node of the manifest reference tree: a declared path (or a
// grouping label) with its resolution status. A group is present when all of
// its children are.
type RefNode struct {
	Label    string    `json:"label"`
	Path     string    `json:"path,omitempty"`
	Present  bool      `json:"present"`
	Children []RefNode `json:"children,omitempty"`
}

// BuildRefTree maps every file reference the manifest declares to a node,
// resolved against the scanned tree. Inspection only: missing files mark
// nodes absent but raise nothing.
func BuildRefTree(m *Manifest, scan *ScanResult, extDir string) RefNode {
	root := RefNode{Label: "manifest.json", Present: true}

	leaf := func(label, ref string) RefNode {
		return RefNode{
			Label:   label,
			Path:    ref,
			Present: scan.FileExists(ResolveRef(extDir, ref)),
		}
	}

	if sw := m.ServiceWorker(); sw != "" {
		root.Children = append(root.Children, leaf("service worker", sw))
	}

	for i, cs := range m.ContentScripts {
		group := RefNode{Label: fmt.Sprintf("content script %d", i+1)}
		for _, js := range cs.JS {
			group.Children = append(group.Children, leaf("js", js))
		}
		for _, css := range cs.CSS {
			group.Children = append(group.Children, leaf("css", css))
		}
		group.Present = allPresent(group.Children)
		root.Children = append(root.Children, group)
	}

	if popup := m.PopupPage(); popup != "" {
		root.Children = append(root.Children, leaf("popup", popup))
	}

	if len(m.Icons) > 0 {
		group := RefNode{Label: "icons"}
		for _, size := range m.IconSizes() {
			group.Children = append(group.Children, leaf(fmt.Sprintf("icon %sx%s", size, size), m.Icons[size]))
		}
		group.Present = allPresent(group.Children)
		root.Children = append(root.Children, group)
	}

	for i, war := range m.WebAccessibleResources {
		group := RefNode{Label: fmt.Sprintf("web accessible resources %d", i+1)}
		for _, res := range war.Resources {
			group.Children = append(group.Children, leaf("resource", res))
		}
		group.Present = allPresent(group.Children)
		root.Children = append(root.Children, group)
	}

	return root
}

func allPresent(nodes []RefNode) bool {
	for _, n := range nodes {
		if !n.Present {
			return false
		}
	}
	return true
}
