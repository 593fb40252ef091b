package api

import (
	"context"
	"fmt"
)

const (
	DefaultMinLength = 100
	DefaultMaxLength = 300
)

// LengthBounds limits the size of a summary, in words.
type LengthBounds struct {
	Min int
	Max int
}

// DefaultLengthBounds returns the bounds used when none are configured.
func DefaultLengthBounds() LengthBounds {
	return LengthBounds{Min: DefaultMinLength, Max: DefaultMaxLength}
}

// Summarizer condenses a transcript into a single summary string.
// Implementations run with sampling disabled so identical input yields
// identical output for a given model version.
type Summarizer interface {
	Summarize(ctx context.Context, text string, bounds LengthBounds) (string, error)
}

// DefaultSeed pins sampling on backends that accept a seed.
const DefaultSeed = 42

// SummaryPrompt is the system instruction shared by the summarizer backends.
// Sentences are requested joined by ". " so the report can split them into
// key points.
func SummaryPrompt(bounds LengthBounds) string {
	return fmt.Sprintf("You summarize meeting transcripts. Write an abstractive summary of between %d and %d words. "+
		"Use plain declarative sentences separated by a period and a single space. "+
		"Do not use headings, bullet points, numbering or line breaks.", bounds.Min, bounds.Max)
}
