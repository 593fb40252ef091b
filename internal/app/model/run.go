package model

import "time"

// Run is the outcome of one pass through the pipeline for an uploaded file.
type Run struct {
	ID         string
	FileName   string
	BaseName   string
	AudioPath  string
	Metadata   MeetingMetadata
	Transcript string
	Summary    string
	KeyPoints  []string
	Report     string
	CreatedAt  time.Time

	// ReportPath is set once the report has been saved.
	ReportPath string
	SavedAt    time.Time
}

// Saved reports whether the save action has been performed for this run.
func (r *Run) Saved() bool {
	return r.ReportPath != ""
}
