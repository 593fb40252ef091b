package dto

import (
	"fmt"
	"path/filepath"
	"time"

	"audio-summarizer/internal/app/model"
)

// CreateRunForm carries the meeting metadata posted with an upload. The
// audio itself is read from the "file" multipart field. Fields are taken as
// given; Metadata replaces empty or unparseable values with defaults.
type CreateRunForm struct {
	Date   string `form:"date" example:"2024-03-14"`
	Time   string `form:"time" example:"09:30:00"`
	Agenda string `form:"agenda" example:"Discuss quarterly results"`
	Venue  string `form:"venue" example:"Conference Room A"`
}

// Metadata resolves the form into meeting metadata, filling defaults at now.
func (f CreateRunForm) Metadata(now time.Time) model.MeetingMetadata {
	return model.ParseMetadata(f.Date, f.Time, f.Agenda, f.Venue, now)
}

// RunURI identifies a run in the request path.
type RunURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// RunResponse represents a pipeline run in API responses
type RunResponse struct {
	ID          string     `json:"id"`
	FileName    string     `json:"file_name"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Agenda      string     `json:"agenda"`
	Venue       string     `json:"venue"`
	Transcript  string     `json:"transcript"`
	Summary     string     `json:"summary"`
	KeyPoints   []string   `json:"key_points"`
	Report      string     `json:"report"`
	Saved       bool       `json:"saved"`
	ReportFile  string     `json:"report_file,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	SavedAt     *time.Time `json:"saved_at,omitempty"`
}

// SaveResponse is returned once a report has been written.
type SaveResponse struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

// ReportFile locates a saved report for download.
type ReportFile struct {
	Path     string
	FileName string
}

// DownloadURL is the JSON API download location for run id.
func DownloadURL(id string) string {
	return fmt.Sprintf("/api/v1/runs/%s/download", id)
}

// ToRunResponse converts a run to its response DTO
func ToRunResponse(run *model.Run) *RunResponse {
	resp := &RunResponse{
		ID:         run.ID,
		FileName:   run.FileName,
		Date:       run.Metadata.DateString(),
		Time:       run.Metadata.TimeString(),
		Agenda:     run.Metadata.Agenda,
		Venue:      run.Metadata.Venue,
		Transcript: run.Transcript,
		Summary:    run.Summary,
		KeyPoints:  run.KeyPoints,
		Report:     run.Report,
		Saved:      run.Saved(),
		CreatedAt:  run.CreatedAt,
	}

	if run.Saved() {
		savedAt := run.SavedAt
		resp.ReportFile = filepath.Base(run.ReportPath)
		resp.DownloadURL = DownloadURL(run.ID)
		resp.SavedAt = &savedAt
	}

	return resp
}
