package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
)

// TranscriberFactory builds the transcriber on first use.
type TranscriberFactory func(ctx context.Context) (api.Transcriber, error)

// SummarizerFactory builds the summarizer on first use.
type SummarizerFactory func(ctx context.Context) (api.Summarizer, error)

// ErrClosed is returned once the registry has been closed.
var ErrClosed = errors.New("model registry is closed")

// Registry owns the application-scoped model handles. Each handle is created
// lazily by its factory and released by Close.
type Registry struct {
	mu             sync.Mutex
	newTranscriber TranscriberFactory
	newSummarizer  SummarizerFactory
	transcriber    api.Transcriber
	summarizer     api.Summarizer
	closed         bool
	logger         *zap.Logger
}

// New creates a registry over the given factories.
func New(newTranscriber TranscriberFactory, newSummarizer SummarizerFactory, logger *zap.Logger) *Registry {
	return &Registry{
		newTranscriber: newTranscriber,
		newSummarizer:  newSummarizer,
		logger:         logger,
	}
}

// Transcriber returns the shared transcriber, creating it if needed. A
// failed creation is not cached.
func (r *Registry) Transcriber(ctx context.Context) (api.Transcriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if r.transcriber == nil {
		transcriber, err := r.newTranscriber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create transcriber: %w", err)
		}
		r.logger.Info("transcriber loaded", zap.String("type", fmt.Sprintf("%T", transcriber)))
		r.transcriber = transcriber
	}
	return r.transcriber, nil
}

// Summarizer returns the shared summarizer, creating it if needed.
func (r *Registry) Summarizer(ctx context.Context) (api.Summarizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	if r.summarizer == nil {
		summarizer, err := r.newSummarizer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create summarizer: %w", err)
		}
		r.logger.Info("summarizer loaded", zap.String("type", fmt.Sprintf("%T", summarizer)))
		r.summarizer = summarizer
	}
	return r.summarizer, nil
}

// Close releases loaded handles that hold resources. It is safe to call more
// than once.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for _, handle := range []any{r.transcriber, r.summarizer} {
		if closer, ok := handle.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	r.transcriber = nil
	r.summarizer = nil
	return errors.Join(errs...)
}
