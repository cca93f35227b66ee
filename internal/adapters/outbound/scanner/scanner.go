package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/extcheck/extcheck/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
}

// File contents above this size are not captured; existence still is. The
// extension sources the checkers read are all far smaller.
const maxCaptureSize = 512 * 1024

// FileScanner implements domain.ExtensionScanner by walking the filesystem
// once and capturing the tree into an in-memory snapshot.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		RootPath: absPath,
		Contents: make(map[string][]byte),
	}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if relPath != "." {
				result.Dirs = append(result.Dirs, relPath)
			}
			return nil
		}

		result.Files = append(result.Files, relPath)

		info, err := d.Info()
		if err != nil || info.Size() > maxCaptureSize {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		result.Contents[relPath] = data

		return nil
	})

	return result, err
}
