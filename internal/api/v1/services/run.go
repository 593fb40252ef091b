package services

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"audio-summarizer/internal/api/v1/dto"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/util/files"
)

// DefaultRunCapacity bounds how many runs are remembered for save and
// download. The oldest run is forgotten first.
const DefaultRunCapacity = 64

// RunServiceImpl implements RunService over an in-memory run table.
type RunServiceImpl struct {
	runner   Runner
	logger   *zap.Logger
	now      func() time.Time
	capacity int

	mu    sync.RWMutex
	runs  map[string]*model.Run
	order []string
}

// NewRunService creates a new run service
func NewRunService(runner Runner, logger *zap.Logger) *RunServiceImpl {
	return &RunServiceImpl{
		runner:   runner,
		logger:   logger,
		now:      time.Now,
		capacity: DefaultRunCapacity,
		runs:     make(map[string]*model.Run),
	}
}

// CreateRun runs the pipeline for upload and remembers the result.
func (s *RunServiceImpl) CreateRun(ctx context.Context, upload model.UploadedAudio, form dto.CreateRunForm) (*dto.RunResponse, error) {
	run, err := s.runner.Run(ctx, upload, form.Metadata(s.now()), nil)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	for len(s.order) > s.capacity {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	s.mu.Unlock()

	return dto.ToRunResponse(run), nil
}

// GetRun returns a remembered run.
func (s *RunServiceImpl) GetRun(ctx context.Context, id string) (*dto.RunResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return dto.ToRunResponse(run), nil
}

// SaveRun writes the run's report to <name>_summary.txt.
func (s *RunServiceImpl) SaveRun(ctx context.Context, id string) (*dto.SaveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	path, err := s.runner.SaveReport(run)
	if err != nil {
		return nil, err
	}

	return &dto.SaveResponse{
		ID:          run.ID,
		Path:        path,
		FileName:    filepath.Base(path),
		DownloadURL: dto.DownloadURL(run.ID),
	}, nil
}

// ReportFile locates the saved report of a run for download.
func (s *RunServiceImpl) ReportFile(ctx context.Context, id string) (*dto.ReportFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !run.Saved() {
		return nil, apperrors.ErrNotSaved
	}
	if !files.Exists(run.ReportPath) {
		s.logger.Warn("saved report missing on disk", zap.String("run_id", id), zap.String("path", run.ReportPath))
		return nil, apperrors.Wrapf(apperrors.ErrNotSaved, "%s no longer exists", filepath.Base(run.ReportPath))
	}

	return &dto.ReportFile{
		Path:     run.ReportPath,
		FileName: filepath.Base(run.ReportPath),
	}, nil
}

func (s *RunServiceImpl) lookup(id string) (*model.Run, error) {
	run, ok := s.runs[id]
	if !ok {
		return nil, apperrors.RunNotFound(id)
	}
	return run, nil
}
