package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-summarizer/internal/app/model"
)

func testMetadata() model.MeetingMetadata {
	return model.MeetingMetadata{
		Date:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Time:   time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		Agenda: "Discuss quarterly results",
		Venue:  "Conference Room A",
	}
}

func TestKeyPoints(t *testing.T) {
	testCases := []struct {
		name     string
		summary  string
		expected []string
	}{
		{
			name:     "three fragments",
			summary:  "A. B. C",
			expected: []string{"A.", "B.", "C."},
		},
		{
			name:     "no separator",
			summary:  "  The team agreed on the budget  ",
			expected: []string{"The team agreed on the budget."},
		},
		{
			name:     "trailing period kept single",
			summary:  "Hello world. This is a test.",
			expected: []string{"Hello world.", "This is a test."},
		},
		{
			name:     "blank fragments dropped",
			summary:  "First point.   . Second point. ",
			expected: []string{"First point.", "Second point."},
		},
		{
			name:     "repeated periods collapse",
			summary:  "Pending... Done..",
			expected: []string{"Pending.", "Done."},
		},
		{
			name:     "empty summary",
			summary:  "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			summary:  "   ",
			expected: []string{},
		},
		{
			name:     "order preserved",
			summary:  "Zeta. Alpha. Mu",
			expected: []string{"Zeta.", "Alpha.", "Mu."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KeyPoints(tc.summary))
		})
	}
}

func TestKeyPoints_ResplitIsIdempotent(t *testing.T) {
	summary := "Budget approved. Hiring paused. Launch moved to May"
	fragments := strings.Split(summary, Separator)

	text := Format(testMetadata(), "transcript", KeyPoints(summary))
	section := text[strings.Index(text, "Summary in Key Points:\n")+len("Summary in Key Points:\n"):]

	var recovered []string
	for _, line := range strings.Split(strings.TrimRight(section, "\n"), "\n") {
		line = strings.TrimPrefix(line, "- ")
		recovered = append(recovered, strings.TrimSuffix(line, "."))
	}

	assert.Equal(t, fragments, recovered)
}

func TestFormat_Layout(t *testing.T) {
	meta := testMetadata()
	text := Format(meta, "Hello world. This is a test.", []string{"Hello world.", "This is a test."})

	expected := "Audio-to-Text Summarization Report\n" +
		"\n" +
		"Meeting Date and Time: 2024-03-14 09:30:00\n" +
		"Meeting Agenda: Discuss quarterly results\n" +
		"Meeting Venue: Conference Room A\n" +
		"\n" +
		"Transcription:\n" +
		"Hello world. This is a test.\n" +
		"\n" +
		"Summary in Key Points:\n" +
		"- Hello world.\n" +
		"- This is a test.\n"

	assert.Equal(t, expected, text)
}

func TestFormat_MetadataVerbatimInOrder(t *testing.T) {
	meta := testMetadata()
	meta.Agenda = "Roadmap: Q3 - naïve ünïcode & symbols"
	meta.Venue = "Room 42 / Building B"
	transcript := "Line one.\nLine two."

	text := Format(meta, transcript, KeyPoints("x"))

	markers := []string{
		Title,
		"Meeting Date and Time: " + meta.DateTime(),
		"Meeting Agenda: " + meta.Agenda,
		"Meeting Venue: " + meta.Venue,
		"Transcription:\n" + transcript,
		"Summary in Key Points:",
		"- x.",
	}

	last := -1
	for _, marker := range markers {
		idx := strings.Index(text, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
}

func TestBuild(t *testing.T) {
	r := Build(testMetadata(), "transcript text", "One. Two")

	assert.Equal(t, []string{"One.", "Two."}, r.KeyPoints)
	assert.Contains(t, r.Text, "- One.\n- Two.\n")
	assert.Contains(t, r.Text, "Transcription:\ntranscript text\n")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "meeting1_summary.txt", FileName("meeting1"))
}
