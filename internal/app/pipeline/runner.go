package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/report"
	"audio-summarizer/internal/app/util/files"
)

// Handles hands out the model handles used by a run.
type Handles interface {
	Transcriber(ctx context.Context) (api.Transcriber, error)
	Summarizer(ctx context.Context) (api.Summarizer, error)
}

// Options configures a Runner.
type Options struct {
	OutputDir string
	Bounds    api.LengthBounds
}

// Runner executes the upload -> transcribe -> summarize -> format pipeline.
// Runs are serialized so only one is in flight at a time.
type Runner struct {
	mu      sync.Mutex
	handles Handles
	options Options
	metrics *Metrics
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRunner creates a Runner writing into opts.OutputDir.
func NewRunner(handles Handles, opts Options, metrics *Metrics, logger *zap.Logger) *Runner {
	if opts.Bounds == (api.LengthBounds{}) {
		opts.Bounds = api.DefaultLengthBounds()
	}
	return &Runner{
		handles: handles,
		options: opts,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// OutputDir is where uploads and saved reports are written.
func (r *Runner) OutputDir() string {
	return r.options.OutputDir
}

// Run persists the upload as <name>.wav, transcribes and summarizes it, and
// formats the report. Nothing is written for the report until SaveReport.
func (r *Runner) Run(ctx context.Context, upload model.UploadedAudio, meta model.MeetingMetadata, listener StageListener) (*model.Run, error) {
	if listener == nil {
		listener = NopListener{}
	}

	baseName, err := files.BaseName(upload.FileName)
	if err == nil && !files.IsAllowedAudio(upload.FileName) {
		err = apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "%q: allowed extensions are %v", upload.FileName, files.AllowedAudioExtensions)
	}
	if err != nil {
		r.metrics.RecordRun(OutcomeRejected)
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	run := &model.Run{
		ID:        r.newID(),
		FileName:  upload.FileName,
		BaseName:  baseName,
		Metadata:  meta,
		CreatedAt: r.now(),
	}
	logger := r.logger.With(zap.String("run_id", run.ID), zap.String("name", baseName))
	logger.Info("run started", zap.Int("bytes", len(upload.Data)))

	err = r.stage(StagePersist, listener, logger, func() error {
		if err := files.EnsureDir(r.options.OutputDir); err != nil {
			return err
		}
		run.AudioPath = filepath.Join(r.options.OutputDir, baseName+".wav")
		return files.WriteFile(run.AudioPath, upload.Data)
	})
	if err != nil {
		return nil, r.fail(logger, err)
	}

	err = r.stage(StageTranscribe, listener, logger, func() error {
		transcriber, err := r.handles.Transcriber(ctx)
		if err != nil {
			return classify(err, apperrors.ErrTranscription)
		}
		transcription, err := transcriber.Transcribe(ctx, &api.TranscriptionRequest{
			AudioPath: run.AudioPath,
			FileName:  upload.FileName,
		})
		if err != nil {
			return classify(err, apperrors.ErrTranscription)
		}
		run.Transcript = transcription.Text
		logger.Debug("transcribed",
			zap.String("model", transcription.Model),
			zap.Float64("audio_seconds", transcription.Duration),
			zap.Int("chars", len(transcription.Text)),
		)
		return nil
	})
	if err != nil {
		return nil, r.fail(logger, err)
	}

	err = r.stage(StageSummarize, listener, logger, func() error {
		summarizer, err := r.handles.Summarizer(ctx)
		if err != nil {
			return classify(err, apperrors.ErrSummarization)
		}
		run.Summary, err = summarizer.Summarize(ctx, run.Transcript, r.options.Bounds)
		return classify(err, apperrors.ErrSummarization)
	})
	if err != nil {
		return nil, r.fail(logger, err)
	}

	_ = r.stage(StageFormat, listener, logger, func() error {
		rep := report.Build(run.Metadata, run.Transcript, run.Summary)
		run.KeyPoints = rep.KeyPoints
		run.Report = rep.Text
		return nil
	})

	r.metrics.RecordRun(OutcomeSuccess)
	logger.Info("run finished", zap.Int("key_points", len(run.KeyPoints)))
	return run, nil
}

// SaveReport writes the run's report to <name>_summary.txt in the output
// directory, replacing any earlier file of that name.
func (r *Runner) SaveReport(run *model.Run) (string, error) {
	if run == nil || run.Report == "" {
		return "", apperrors.Wrap(apperrors.ErrFileWrite, "run has no report")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := files.EnsureDir(r.options.OutputDir); err != nil {
		return "", err
	}

	path := filepath.Join(r.options.OutputDir, report.FileName(run.BaseName))
	if err := files.WriteFile(path, []byte(run.Report)); err != nil {
		return "", err
	}

	run.ReportPath = path
	run.SavedAt = r.now()
	r.metrics.RecordSave()
	r.logger.Info("report saved", zap.String("run_id", run.ID), zap.String("path", path))
	return path, nil
}

func (r *Runner) stage(stage Stage, listener StageListener, logger *zap.Logger, fn func() error) error {
	listener.StageStarted(stage)
	start := time.Now()

	err := fn()

	elapsed := time.Since(start)
	r.metrics.ObserveStage(stage, elapsed)
	listener.StageFinished(stage, err)
	if err != nil {
		logger.Error("stage failed", zap.String("stage", string(stage)), zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	logger.Debug("stage finished", zap.String("stage", string(stage)), zap.Duration("elapsed", elapsed))
	return nil
}

func (r *Runner) fail(logger *zap.Logger, err error) error {
	if errors.Is(err, context.Canceled) {
		logger.Warn("run cancelled")
	}
	r.metrics.RecordRun(OutcomeFailed)
	return err
}

// classify marks err with kind unless it already carries it.
func classify(err error, kind *apperrors.Error) error {
	if err == nil || errors.Is(err, kind) {
		return err
	}
	return apperrors.Mark(err, kind)
}
