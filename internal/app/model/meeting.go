package model

import (
	"strings"
	"time"
)

const (
	DefaultAgenda = "Discuss quarterly results"
	DefaultVenue  = "Conference Room A"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// MeetingMetadata is the user-supplied context printed at the top of a report.
type MeetingMetadata struct {
	Date   time.Time
	Time   time.Time
	Agenda string
	Venue  string
}

// DefaultMetadata returns the metadata shown before the user edits anything.
func DefaultMetadata(now time.Time) MeetingMetadata {
	return MeetingMetadata{
		Date:   now,
		Time:   now,
		Agenda: DefaultAgenda,
		Venue:  DefaultVenue,
	}
}

// DateString renders the meeting date as YYYY-MM-DD.
func (m MeetingMetadata) DateString() string {
	return m.Date.Format(DateLayout)
}

// TimeString renders the meeting time as HH:MM:SS.
func (m MeetingMetadata) TimeString() string {
	return m.Time.Format(TimeLayout)
}

// DateTime is the combined "<date> <time>" value used in reports.
func (m MeetingMetadata) DateTime() string {
	return m.DateString() + " " + m.TimeString()
}

var timeLayouts = []string{TimeLayout, "15:04"}

// ParseMetadata builds metadata from raw form values. An empty or
// unparseable date or time falls back to now; an empty agenda or venue falls
// back to its default. Non-empty agenda and venue are kept verbatim.
func ParseMetadata(date, clock, agenda, venue string, now time.Time) MeetingMetadata {
	meta := DefaultMetadata(now)

	if d, err := time.Parse(DateLayout, strings.TrimSpace(date)); err == nil {
		meta.Date = d
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(clock)); err == nil {
			meta.Time = t
			break
		}
	}
	if agenda != "" {
		meta.Agenda = agenda
	}
	if venue != "" {
		meta.Venue = venue
	}
	return meta
}
