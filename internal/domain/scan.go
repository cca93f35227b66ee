package domain

import (
	"bytes"
	"fmt"
	"path"
)

// ScanResult is an immutable snapshot of a project tree, produced once per
// run by the scanner adapter. Checkers resolve every lookup against it and
// never touch the filesystem, which makes a run deterministic: two scans of
// an unchanged tree yield identical reports.
type ScanResult struct {
	RootPath string            `json:"root_path"`
	Files    []string          `json:"files"`
	Dirs     []string          `json:"dirs"`
	Contents map[string][]byte `json:"-"`
}

// FileExists reports whether the relative path was captured as a file.
func (s *ScanResult) FileExists(rel string) bool {
	_, ok := s.Contents[path.Clean(rel)]
	if ok {
		return true
	}
	for _, f := range s.Files {
		if f == path.Clean(rel) {
			return true
		}
	}
	return false
}

// DirExists reports whether the relative path was captured as a directory.
// The root itself ("." or "") always exists.
func (s *ScanResult) DirExists(rel string) bool {
	clean := path.Clean(rel)
	if clean == "." || clean == "" {
		return true
	}
	for _, d := range s.Dirs {
		if d == clean {
			return true
		}
	}
	return false
}

// ReadFile returns the captured content of a file. A missing file, or a file
// whose content was not captured (oversize at scan time), is an error naming
// the path.
func (s *ScanResult) ReadFile(rel string) ([]byte, error) {
	data, ok := s.Contents[path.Clean(rel)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", rel)
	}
	return data, nil
}

// Contains reports whether the file's text content includes the literal
// token. This is a substring check, not a parse; it is how the structure
// suite detects expected constructs in extension sources.
func (s *ScanResult) Contains(rel, token string) (bool, error) {
	data, err := s.ReadFile(rel)
	if err != nil {
		return false, err
	}
	return bytes.Contains(data, []byte(token)), nil
}

// ResolveRef joins a base directory with a manifest-declared relative path.
// No traversal sanitization is applied: a "../" reference is joined and
// cleaned as-is, matching how a browser would resolve it. Because lookups go
// through the in-memory scan, a reference escaping the scanned tree simply
// reports as missing rather than reading outside it.
func ResolveRef(base, ref string) string {
	return path.Join(base, ref)
}
