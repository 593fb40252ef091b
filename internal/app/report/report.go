// Package report turns a transcript and its summary into the plain-text
// meeting report that users save and download.
package report

import (
	"strings"

	"github.com/samber/lo"

	"audio-summarizer/internal/app/model"
)

const (
	Title = "Audio-to-Text Summarization Report"

	// Separator splits a summary into key points.
	Separator = ". "

	FileSuffix = "_summary.txt"
)

// Report is the formatted output for one run.
type Report struct {
	KeyPoints []string
	Text      string
}

// Build splits the summary into key points and lays out the full report.
func Build(meta model.MeetingMetadata, transcript, summary string) Report {
	points := KeyPoints(summary)
	return Report{
		KeyPoints: points,
		Text:      Format(meta, transcript, points),
	}
}

// KeyPoints splits summary on ". ", drops blank fragments and terminates
// every remaining fragment with exactly one period.
func KeyPoints(summary string) []string {
	return lo.FilterMap(strings.Split(summary, Separator), func(fragment string, _ int) (string, bool) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			return "", false
		}
		return strings.TrimRight(fragment, ".") + ".", true
	})
}

// Format lays out metadata, transcript and key points in the fixed report order.
func Format(meta model.MeetingMetadata, transcript string, keyPoints []string) string {
	var sb strings.Builder

	sb.WriteString(Title + "\n")
	sb.WriteString("\nMeeting Date and Time: " + meta.DateTime() + "\n")
	sb.WriteString("Meeting Agenda: " + meta.Agenda + "\n")
	sb.WriteString("Meeting Venue: " + meta.Venue + "\n")
	sb.WriteString("\nTranscription:\n")
	sb.WriteString(transcript)
	sb.WriteString("\n\nSummary in Key Points:\n")
	for _, point := range keyPoints {
		sb.WriteString("- " + point + "\n")
	}

	return sb.String()
}

// FileName is the name a report for baseName is saved under.
func FileName(baseName string) string {
	return baseName + FileSuffix
}
