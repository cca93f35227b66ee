package domain

import (
	"fmt"
	"time"
)

// Status classifies one check result.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// CheckResult is one executed check: its description, outcome, and the
// failure detail when a predicate errored. Optional checks warn instead of
// fail and are excluded from the pass/fail tally.
type CheckResult struct {
	Section     string `json:"section"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Detail      string `json:"detail,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
}

// label renders the result the way failure and warning lists enumerate it.
func (r CheckResult) label() string {
	if r.Detail != "" {
		return fmt.Sprintf("%s: %s", r.Description, r.Detail)
	}
	return r.Description
}

// StructureReport aggregates the ordered results of one structure suite run.
// Results appear in checklist order and are never retracted.
type StructureReport struct {
	ProjectPath  string        `json:"project_path"`
	ExtensionDir string        `json:"extension_dir"`
	RunID        string        `json:"run_id,omitempty"`
	CommitHash   string        `json:"commit_hash,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
	Results      []CheckResult `json:"results"`
}

// Record appends one result.
func (r *StructureReport) Record(res CheckResult) {
	r.Results = append(r.Results, res)
}

// Total counts non-optional checks.
func (r *StructureReport) Total() int {
	n := 0
	for _, res := range r.Results {
		if !res.Optional {
			n++
		}
	}
	return n
}

// Passed counts non-optional checks that passed.
func (r *StructureReport) Passed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Optional && res.Status == StatusPass {
			n++
		}
	}
	return n
}

// Failed counts non-optional checks that failed.
func (r *StructureReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Optional && res.Status == StatusFail {
			n++
		}
	}
	return n
}

// Warned counts optional checks that did not pass.
func (r *StructureReport) Warned() int {
	n := 0
	for _, res := range r.Results {
		if res.Optional && res.Status == StatusWarn {
			n++
		}
	}
	return n
}

// SuccessRate is passed/total as a percentage, 0 for an empty report.
func (r *StructureReport) SuccessRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(total) * 100
}

// OK reports whether the run recorded zero failures. Warnings do not affect
// it.
func (r *StructureReport) OK() bool {
	return r.Failed() == 0
}

// Failures returns the ordered failure descriptions, verbatim.
func (r *StructureReport) Failures() []string {
	var out []string
	for _, res := range r.Results {
		if !res.Optional && res.Status == StatusFail {
			out = append(out, res.label())
		}
	}
	return out
}

// Warnings returns the ordered warning descriptions, verbatim.
func (r *StructureReport) Warnings() []string {
	var out []string
	for _, res := range r.Results {
		if res.Optional && res.Status == StatusWarn {
			out = append(out, res.label())
		}
	}
	return out
}

// Issue is one finding of the consistency checker. Fatal issues prevent the
// extension from loading; warnings do not.
type Issue struct {
	Category string `json:"category"`
	File     string `json:"file,omitempty"`
	Message  string `json:"message"`
}

// ReportEntry is one confirmation or informational line of the consistency
// report, in emission order.
type ReportEntry struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// ConsistencyReport aggregates one manifest consistency run: ordered
// confirmations plus two independent accumulators for fatal issues and
// warnings.
type ConsistencyReport struct {
	ProjectPath  string        `json:"project_path"`
	ExtensionDir string        `json:"extension_dir"`
	RunID        string        `json:"run_id,omitempty"`
	CommitHash   string        `json:"commit_hash,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
	Entries      []ReportEntry `json:"entries,omitempty"`
	Issues       []Issue       `json:"issues,omitempty"`
	Warnings     []Issue       `json:"warnings,omitempty"`
}

// Confirm appends a confirmation/informational entry.
func (r *ConsistencyReport) Confirm(section, format string, args ...any) {
	r.Entries = append(r.Entries, ReportEntry{
		Section: section,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddIssue records a fatal issue.
func (r *ConsistencyReport) AddIssue(category, file, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Category: category,
		File:     file,
		Message:  fmt.Sprintf(format, args...),
	})
}

// AddWarning records a non-fatal warning.
func (r *ConsistencyReport) AddWarning(category, file, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{
		Category: category,
		File:     file,
		Message:  fmt.Sprintf(format, args...),
	})
}

// OK reports whether the run recorded zero fatal issues.
func (r *ConsistencyReport) OK() bool {
	return len(r.Issues) == 0
}
