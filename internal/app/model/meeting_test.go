package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMetadata(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 30, 5, 0, time.UTC)
	meta := DefaultMetadata(now)

	assert.Equal(t, "2024-03-14", meta.DateString())
	assert.Equal(t, "09:30:05", meta.TimeString())
	assert.Equal(t, "2024-03-14 09:30:05", meta.DateTime())
	assert.Equal(t, DefaultAgenda, meta.Agenda)
	assert.Equal(t, DefaultVenue, meta.Venue)
}

func TestParseMetadata(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 30, 5, 0, time.UTC)

	testCases := []struct {
		name     string
		date     string
		clock    string
		agenda   string
		venue    string
		dateTime string
		wantAg   string
		wantVen  string
	}{
		{
			name:     "all provided",
			date:     "2023-11-02",
			clock:    "14:05:00",
			agenda:   "Budget review",
			venue:    "Room 12",
			dateTime: "2023-11-02 14:05:00",
			wantAg:   "Budget review",
			wantVen:  "Room 12",
		},
		{
			name:     "html time input without seconds",
			date:     "2023-11-02",
			clock:    "14:05",
			dateTime: "2023-11-02 14:05:00",
			wantAg:   DefaultAgenda,
			wantVen:  DefaultVenue,
		},
		{
			name:     "empty values use defaults",
			dateTime: "2024-03-14 09:30:05",
			wantAg:   DefaultAgenda,
			wantVen:  DefaultVenue,
		},
		{
			name:     "unparseable date and time use now",
			date:     "14/03/2024",
			clock:    "half past nine",
			dateTime: "2024-03-14 09:30:05",
			wantAg:   DefaultAgenda,
			wantVen:  DefaultVenue,
		},
		{
			name:     "agenda kept verbatim",
			agenda:   "  Roadmap: Q3 & Q4  ",
			venue:    "Room 42 / Building B",
			dateTime: "2024-03-14 09:30:05",
			wantAg:   "  Roadmap: Q3 & Q4  ",
			wantVen:  "Room 42 / Building B",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			meta := ParseMetadata(tc.date, tc.clock, tc.agenda, tc.venue, now)
			assert.Equal(t, tc.dateTime, meta.DateTime())
			assert.Equal(t, tc.wantAg, meta.Agenda)
			assert.Equal(t, tc.wantVen, meta.Venue)
		})
	}
}

func TestRun_Saved(t *testing.T) {
	run := &Run{ID: "r1"}
	assert.False(t, run.Saved())

	run.ReportPath = "output/meeting1_summary.txt"
	assert.True(t, run.Saved())
}
