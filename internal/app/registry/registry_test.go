package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	"audio-summarizer/internal/app/api/gemini"
	"audio-summarizer/internal/app/api/openai/chat"
	"audio-summarizer/internal/app/api/openai/whisper"
	"audio-summarizer/internal/app/api/whisper_cpp"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/testutil"
	"audio-summarizer/internal/config"
)

type closingTranscriber struct {
	*testutil.MockTranscriber
	closed int
}

func (c *closingTranscriber) Close() error {
	c.closed++
	return nil
}

func TestRegistry_LazyCreation(t *testing.T) {
	calls := 0
	transcriber := testutil.NewMockTranscriber(t)
	r := New(func(ctx context.Context) (api.Transcriber, error) {
		calls++
		return transcriber, nil
	}, nil, zap.NewNop())

	assert.Equal(t, 0, calls, "nothing is created up front")

	first, err := r.Transcriber(context.Background())
	require.NoError(t, err)
	second, err := r.Transcriber(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestRegistry_FailedCreationIsRetried(t *testing.T) {
	calls := 0
	summarizer := testutil.NewMockSummarizer(t)
	r := New(nil, func(ctx context.Context) (api.Summarizer, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("model not downloaded")
		}
		return summarizer, nil
	}, zap.NewNop())

	_, err := r.Summarizer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create summarizer")

	got, err := r.Summarizer(context.Background())
	require.NoError(t, err)
	assert.Same(t, summarizer, got)
	assert.Equal(t, 2, calls)
}

func TestRegistry_Close(t *testing.T) {
	transcriber := &closingTranscriber{MockTranscriber: testutil.NewMockTranscriber(t)}
	r := New(func(ctx context.Context) (api.Transcriber, error) {
		return transcriber, nil
	}, nil, zap.NewNop())

	_, err := r.Transcriber(context.Background())
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, transcriber.closed)

	_, err = r.Transcriber(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.Summarizer(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTranscriberFor(t *testing.T) {
	ctx := context.Background()

	local, err := TranscriberFor(config.TranscriberConfig{
		Provider:   config.ProviderWhisperCpp,
		BinaryPath: "whisper-cli",
		ModelPath:  "ggml-base.bin",
	}, zap.NewNop())(ctx)
	require.NoError(t, err)
	assert.IsType(t, &whisper_cpp.LocalTranscriber{}, local)

	remote, err := TranscriberFor(config.TranscriberConfig{
		Provider: config.ProviderOpenAI,
		APIKey:   "sk-test",
	}, zap.NewNop())(ctx)
	require.NoError(t, err)
	assert.IsType(t, &whisper.RemoteTranscriber{}, remote)

	_, err = TranscriberFor(config.TranscriberConfig{Provider: config.ProviderOpenAI}, zap.NewNop())(ctx)
	assert.ErrorIs(t, err, apperrors.ErrMissingAPIKey)

	_, err = TranscriberFor(config.TranscriberConfig{Provider: "bart"}, zap.NewNop())(ctx)
	assert.ErrorContains(t, err, "unsupported transcriber provider")
}

func TestSummarizerFor(t *testing.T) {
	ctx := context.Background()

	openaiSummarizer, err := SummarizerFor(config.SummarizerConfig{Provider: config.ProviderOpenAI, APIKey: "sk-test"})(ctx)
	require.NoError(t, err)
	assert.IsType(t, &chat.Summarizer{}, openaiSummarizer)

	geminiSummarizer, err := SummarizerFor(config.SummarizerConfig{Provider: config.ProviderGemini, APIKey: "AIza-test"})(ctx)
	require.NoError(t, err)
	assert.IsType(t, &gemini.Summarizer{}, geminiSummarizer)

	missing, err := SummarizerFor(config.SummarizerConfig{Provider: config.ProviderGemini})(ctx)
	assert.ErrorIs(t, err, apperrors.ErrMissingAPIKey)
	assert.Nil(t, missing)

	_, err = SummarizerFor(config.SummarizerConfig{Provider: "bart"})(ctx)
	assert.ErrorContains(t, err, "unsupported summarizer provider")
}
