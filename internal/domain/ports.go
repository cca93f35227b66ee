package domain

// ExtensionScanner snapshots a project directory into a ScanResult.
type ExtensionScanner interface {
	Scan(projectPath string) (*ScanResult, error)
}

// ConfigLoader resolves the effective checklist for a project.
type ConfigLoader interface {
	Load(projectPath string) (Checklist, error)
}

// GitInfo reads repository metadata for report stamping.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
