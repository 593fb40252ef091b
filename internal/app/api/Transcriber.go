package api

import (
	"context"

	"audio-summarizer/internal/app/model"
)

// TranscriptionRequest identifies an audio file on local disk.
type TranscriptionRequest struct {
	// AudioPath is the working copy written by the shell.
	AudioPath string
	// FileName is the name the user uploaded, used where a backend infers
	// the container from the extension.
	FileName string
}

// Transcriber defines a transcription interface for converting audio files to text.
// A call blocks until the full transcript is available.
type Transcriber interface {
	Transcribe(ctx context.Context, req *TranscriptionRequest) (*model.Transcription, error)
}
