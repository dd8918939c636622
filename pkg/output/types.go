// Package output provides formatting and output generation for discovery results.
package output

import (
	"time"

	"github.com/suuzee/lintpath/pkg/discovery"
)

// Report is the complete discovery output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Files contains the discovered file records in processing order.
	Files []discovery.FileRecord `json:"files"`

	// Metadata provides context about the discovery run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalFiles is the number of records in the report.
	TotalFiles int `json:"total_files"`

	// IgnoredFiles is the number of directly named files that matched
	// an ignore rule.
	IgnoredFiles int `json:"ignored_files"`
}

// Metadata provides context about the discovery run.
type Metadata struct {
	// Cwd is the base directory patterns were resolved against.
	Cwd string `json:"cwd"`

	// Patterns lists the resolved patterns that were expanded.
	Patterns []string `json:"patterns"`

	// DiscoveredAt is when the discovery was performed.
	DiscoveredAt time.Time `json:"discovered_at"`
}

// NewReport creates a Report from discovery results.
func NewReport(files []discovery.FileRecord, cwd string, patterns []string) *Report {
	ignored := 0
	for _, f := range files {
		if f.Ignored {
			ignored++
		}
	}

	return &Report{
		Files: files,
		Summary: Summary{
			TotalFiles:   len(files),
			IgnoredFiles: ignored,
		},
		Metadata: Metadata{
			Cwd:          cwd,
			Patterns:     patterns,
			DiscoveredAt: time.Now(),
		},
	}
}

// HasFiles returns true if any files were discovered.
func (r *Report) HasFiles() bool {
	return r.Summary.TotalFiles > 0
}
