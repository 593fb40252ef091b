package whisper

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
)

// Config selects the OpenAI speech-to-text model and hints.
type Config struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	config Config
}

var _ api.Transcriber = (*RemoteTranscriber)(nil)

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, config Config) *RemoteTranscriber {
	if config.Model == "" {
		config.Model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, config: config}
}

// Transcribe uploads the audio file and returns the full transcript.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.Transcription, error) {
	file, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, apperrors.Mark(fmt.Errorf("open audio: %w", err), apperrors.ErrTranscription)
	}
	defer file.Close()

	name := req.FileName
	if name == "" {
		name = req.AudioPath
	}

	resp, err := rt.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    rt.config.Model,
		FilePath: name,
		Reader:   file,
		Prompt:   rt.config.Prompt,
		Language: rt.config.Language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, apperrors.Mark(fmt.Errorf("createTranscription failed: %w", err), apperrors.ErrTranscription)
	}

	return &model.Transcription{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
		Model:    rt.config.Model,
	}, nil
}
