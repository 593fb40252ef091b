package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
)

func TestGenerateConfig(t *testing.T) {
	cfg := GenerateConfig(api.LengthBounds{Min: 100, Max: 300}, 7)

	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, float32(0), *cfg.Temperature)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int32(7), *cfg.Seed)
	assert.Equal(t, int32(600), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "between 100 and 300 words")
}

func TestNewSummarizer_MissingKey(t *testing.T) {
	_, err := NewSummarizer(context.Background(), Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingAPIKey))
}

func TestSummarizer_Summarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello world. "},{"text":"This is a test."}]}}]}`))
	}))
	defer srv.Close()

	s, err := NewSummarizer(context.Background(), Config{APIKey: "AIza-test", BaseURL: srv.URL})
	require.NoError(t, err)

	summary, err := s.Summarize(context.Background(), "Hello world. This is a test.", api.DefaultLengthBounds())
	require.NoError(t, err)
	assert.Equal(t, "Hello world. This is a test.", summary)
}

func TestSummarizer_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	s, err := NewSummarizer(context.Background(), Config{APIKey: "AIza-test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "text", api.DefaultLengthBounds())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSummarization))
}
