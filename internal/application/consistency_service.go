package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/extcheck/extcheck/internal/domain"
	"github.com/extcheck/extcheck/internal/domain/consistency"
)

// ConsistencyService orchestrates the manifest consistency checker and the
// manifest inspection surface behind the refs command and the MCP tools.
type ConsistencyService struct {
	scanner domain.ExtensionScanner
	config  domain.ConfigLoader
	git     domain.GitInfo
}

func NewConsistencyService(
	scanner domain.ExtensionScanner,
	config domain.ConfigLoader,
	git domain.GitInfo,
) *ConsistencyService {
	return &ConsistencyService{
		scanner: scanner,
		config:  config,
		git:     git,
	}
}

// Run validates the project's manifest against the files it declares.
func (s *ConsistencyService) Run(projectPath string) (*domain.ConsistencyReport, error) {
	list, scan, err := s.load(projectPath)
	if err != nil {
		return nil, err
	}

	report := consistency.Run(scan, list)
	report.RunID = uuid.NewString()
	report.Timestamp = time.Now().UTC()

	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// LoadManifest parses the project's manifest and returns it with the scan
// and effective checklist, for reference-tree rendering and MCP inspection.
func (s *ConsistencyService) LoadManifest(projectPath string) (*domain.Manifest, *domain.ScanResult, domain.Checklist, error) {
	list, scan, err := s.load(projectPath)
	if err != nil {
		return nil, nil, domain.Checklist{}, err
	}

	data, err := scan.ReadFile(domain.ResolveRef(list.ExtensionDir, "manifest.json"))
	if err != nil {
		return nil, nil, domain.Checklist{}, fmt.Errorf("reading manifest: %w", err)
	}

	m, err := domain.ParseManifest(data)
	if err != nil {
		return nil, nil, domain.Checklist{}, fmt.Errorf("parsing manifest: %w", err)
	}

	return m, scan, list, nil
}

// Checklist returns the effective checklist for the project.
func (s *ConsistencyService) Checklist(projectPath string) (domain.Checklist, error) {
	list, err := s.config.Load(projectPath)
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("loading config: %w", err)
	}
	return list, nil
}

func (s *ConsistencyService) load(projectPath string) (domain.Checklist, *domain.ScanResult, error) {
	list, err := s.config.Load(projectPath)
	if err != nil {
		return domain.Checklist{}, nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath)
	if err != nil {
		return domain.Checklist{}, nil, fmt.Errorf("scanning project: %w", err)
	}

	return list, scan, nil
}
