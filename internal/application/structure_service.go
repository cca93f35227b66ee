package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/extcheck/extcheck/internal/domain"
	"github.com/extcheck/extcheck/internal/domain/structure"
)

// StructureService orchestrates the structure suite:
// load checklist -> scan project -> run check table -> stamp report metadata.
type StructureService struct {
	scanner domain.ExtensionScanner
	config  domain.ConfigLoader
	git     domain.GitInfo
}

func NewStructureService(
	scanner domain.ExtensionScanner,
	config domain.ConfigLoader,
	git domain.GitInfo,
) *StructureService {
	return &StructureService{
		scanner: scanner,
		config:  config,
		git:     git,
	}
}

// Run executes the structure suite against the project at projectPath.
// Scan and config failures are process errors; findings inside a scannable
// project are report results, never errors.
func (s *StructureService) Run(projectPath string) (*domain.StructureReport, error) {
	list, err := s.config.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := structure.Run(scan, list)
	stampStructure(report, s.git, projectPath)

	return report, nil
}

func stampStructure(report *domain.StructureReport, git domain.GitInfo, projectPath string) {
	report.RunID = uuid.NewString()
	report.Timestamp = time.Now().UTC()

	// Commit hash is best-effort; not every checked tree is a repository.
	if git != nil && git.IsGitRepo(projectPath) {
		if hash, err := git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}
}
