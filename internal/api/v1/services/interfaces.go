package services

import (
	"context"

	"audio-summarizer/internal/api/v1/dto"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/pipeline"
)

// RunService defines the interface for pipeline run operations
type RunService interface {
	CreateRun(ctx context.Context, upload model.UploadedAudio, form dto.CreateRunForm) (*dto.RunResponse, error)
	GetRun(ctx context.Context, id string) (*dto.RunResponse, error)
	SaveRun(ctx context.Context, id string) (*dto.SaveResponse, error)
	ReportFile(ctx context.Context, id string) (*dto.ReportFile, error)
}

// Runner executes the pipeline and writes reports.
type Runner interface {
	Run(ctx context.Context, upload model.UploadedAudio, meta model.MeetingMetadata, listener pipeline.StageListener) (*model.Run, error)
	SaveReport(run *model.Run) (string, error)
}

var _ Runner = (*pipeline.Runner)(nil)
