package application_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extcheck/extcheck/internal/application"
	"github.com/extcheck/extcheck/internal/domain"
)

type fakeScanner struct {
	scan *domain.ScanResult
	err  error
}

func (f *fakeScanner) Scan(string) (*domain.ScanResult, error) {
	return f.scan, f.err
}

type fakeConfig struct {
	list domain.Checklist
	err  error
}

func (f *fakeConfig) Load(string) (domain.Checklist, error) {
	return f.list, f.err
}

type fakeGit struct {
	isRepo bool
	hash   string
	err    error
}

func (f *fakeGit) IsGitRepo(string) bool { return f.isRepo }

func (f *fakeGit) CommitHash(string) (string, error) { return f.hash, f.err }

func minimalScan() *domain.ScanResult {
	return &domain.ScanResult{
		RootPath: "/project",
		Files:    []string{"extension/manifest.json"},
		Contents: map[string][]byte{
			"extension/manifest.json": []byte(`{"manifest_version": 3, "name": "X", "version": "1.0"}`),
		},
	}
}

func TestStructureService_Run(t *testing.T) {
	svc := application.NewStructureService(
		&fakeScanner{scan: minimalScan()},
		&fakeConfig{list: domain.DefaultChecklist()},
		&fakeGit{isRepo: true, hash: "abc123"},
	)

	report, err := svc.Run("/project")
	require.NoError(t, err)

	assert.Equal(t, "/project", report.ProjectPath)
	assert.Equal(t, "extension", report.ExtensionDir)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.Timestamp.IsZero())
	assert.Equal(t, "abc123", report.CommitHash)
	assert.NotEmpty(t, report.Results)
}

func TestStructureService_RunIDsDiffer(t *testing.T) {
	svc := application.NewStructureService(
		&fakeScanner{scan: minimalScan()},
		&fakeConfig{list: domain.DefaultChecklist()},
		&fakeGit{},
	)

	first, err := svc.Run("/project")
	require.NoError(t, err)
	second, err := svc.Run("/project")
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestStructureService_NotARepoLeavesHashEmpty(t *testing.T) {
	svc := application.NewStructureService(
		&fakeScanner{scan: minimalScan()},
		&fakeConfig{list: domain.DefaultChecklist()},
		&fakeGit{isRepo: false},
	)

	report, err := svc.Run("/project")
	require.NoError(t, err)
	assert.Empty(t, report.CommitHash)
}

func TestStructureService_ConfigError(t *testing.T) {
	svc := application.NewStructureService(
		&fakeScanner{scan: minimalScan()},
		&fakeConfig{err: fmt.Errorf("bad yaml")},
		&fakeGit{},
	)

	_, err := svc.Run("/project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestStructureService_ScanError(t *testing.T) {
	svc := application.NewStructureService(
		&fakeScanner{err: fmt.Errorf("no such directory")},
		&fakeConfig{list: domain.DefaultChecklist()},
		&fakeGit{},
	)

	_, err := svc.Run("/project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning project")
}
