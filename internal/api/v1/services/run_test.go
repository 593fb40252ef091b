package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-summarizer/internal/api/v1/dto"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/pipeline"
	"audio-summarizer/internal/app/testutil"
)

func newTestService(t *testing.T) (*RunServiceImpl, string) {
	t.Helper()
	dir := t.TempDir()

	transcriber := testutil.NewMockTranscriber(t)
	transcriber.On("Transcribe", mock.Anything, mock.Anything).
		Return(&model.Transcription{Text: testutil.SampleTranscript}, nil).Maybe()
	summarizer := testutil.NewMockSummarizer(t)
	summarizer.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(testutil.SampleSummary, nil).Maybe()

	runner := pipeline.NewRunner(
		testutil.StaticHandles{T: transcriber, S: summarizer},
		pipeline.Options{OutputDir: dir},
		pipeline.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)

	service := NewRunService(runner, zap.NewNop())
	service.now = func() time.Time { return testutil.SampleNow }
	return service, dir
}

func TestRunService_CreateSaveDownload(t *testing.T) {
	service, dir := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, testutil.SampleUpload(), dto.CreateRunForm{})
	require.NoError(t, err)

	assert.Equal(t, "meeting1.wav", created.FileName)
	assert.Equal(t, "2024-03-14", created.Date)
	assert.Equal(t, "09:30:00", created.Time)
	assert.Equal(t, model.DefaultAgenda, created.Agenda)
	assert.Equal(t, model.DefaultVenue, created.Venue)
	assert.Equal(t, testutil.SampleKeyPoints, created.KeyPoints)
	assert.False(t, created.Saved)
	assert.Empty(t, created.DownloadURL)

	_, err = service.ReportFile(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)

	saved, err := service.SaveRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "meeting1_summary.txt"), saved.Path)
	assert.Equal(t, "meeting1_summary.txt", saved.FileName)
	assert.Equal(t, "/api/v1/runs/"+created.ID+"/download", saved.DownloadURL)

	fetched, err := service.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Saved)
	assert.Equal(t, "meeting1_summary.txt", fetched.ReportFile)
	require.NotNil(t, fetched.SavedAt)

	file, err := service.ReportFile(ctx, created.ID)
	require.NoError(t, err)
	content, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, created.Report, string(content))
}

func TestRunService_FormMetadataVerbatim(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateRun(context.Background(), testutil.SampleUpload(), dto.CreateRunForm{
		Date:   "2023-11-02",
		Time:   "14:05",
		Agenda: "Hiring plan & budget",
		Venue:  "Room 7",
	})
	require.NoError(t, err)

	assert.Contains(t, created.Report, "Meeting Date and Time: 2023-11-02 14:05:00\n")
	assert.Contains(t, created.Report, "Meeting Agenda: Hiring plan & budget\n")
	assert.Contains(t, created.Report, "Meeting Venue: Room 7\n")
}

func TestRunService_MalformedMetadataFallsBack(t *testing.T) {
	service, _ := newTestService(t)
	agenda := strings.Repeat("a", 1001)

	created, err := service.CreateRun(context.Background(), testutil.SampleUpload(), dto.CreateRunForm{
		Date:   "03/14/2024",
		Time:   "noon",
		Agenda: agenda,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-14", created.Date)
	assert.Equal(t, "09:30:00", created.Time)
	assert.Equal(t, agenda, created.Agenda)
	assert.Contains(t, created.Report, "Meeting Agenda: "+agenda+"\n")
}

func TestRunService_UnknownRun(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrRunNotFound)
	_, err = service.SaveRun(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrRunNotFound)
	_, err = service.ReportFile(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrRunNotFound)
}

func TestRunService_SavedReportRemoved(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, testutil.SampleUpload(), dto.CreateRunForm{})
	require.NoError(t, err)
	saved, err := service.SaveRun(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, os.Remove(saved.Path))

	_, err = service.ReportFile(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotSaved)
}

func TestRunService_EvictsOldestRun(t *testing.T) {
	service, _ := newTestService(t)
	service.capacity = 2
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		created, err := service.CreateRun(ctx, testutil.SampleUpload(), dto.CreateRunForm{})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	_, err := service.GetRun(ctx, ids[0])
	assert.ErrorIs(t, err, apperrors.ErrRunNotFound)
	for _, id := range ids[1:] {
		_, err := service.GetRun(ctx, id)
		assert.NoError(t, err)
	}
}

func TestRunService_PipelineFailureIsNotRemembered(t *testing.T) {
	dir := t.TempDir()
	transcriber := testutil.NewMockTranscriber(t)
	transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(nil, errors.New("no model"))

	runner := pipeline.NewRunner(
		testutil.StaticHandles{T: transcriber, S: testutil.NewMockSummarizer(t)},
		pipeline.Options{OutputDir: dir},
		pipeline.NewMetrics(nil),
		zap.NewNop(),
	)
	service := NewRunService(runner, zap.NewNop())

	_, err := service.CreateRun(context.Background(), testutil.SampleUpload(), dto.CreateRunForm{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTranscription)
	assert.Empty(t, service.runs)
}
