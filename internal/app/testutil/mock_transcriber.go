package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"audio-summarizer/internal/app/api"
	"audio-summarizer/internal/app/model"
)

// MockTranscriber is a testify mock of api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

var _ api.Transcriber = (*MockTranscriber)(nil)

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.Transcription, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

// MockSummarizer is a testify mock of api.Summarizer.
type MockSummarizer struct {
	mock.Mock
}

var _ api.Summarizer = (*MockSummarizer)(nil)

func NewMockSummarizer(t *testing.T) *MockSummarizer {
	m := &MockSummarizer{}
	m.Test(t)
	return m
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string, bounds api.LengthBounds) (string, error) {
	args := m.Called(ctx, text, bounds)
	return args.String(0), args.Error(1)
}

// StaticHandles hands out fixed model handles.
type StaticHandles struct {
	T api.Transcriber
	S api.Summarizer
}

func (h StaticHandles) Transcriber(context.Context) (api.Transcriber, error) { return h.T, nil }
func (h StaticHandles) Summarizer(context.Context) (api.Summarizer, error)   { return h.S, nil }
