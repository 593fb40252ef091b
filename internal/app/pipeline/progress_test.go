package pipeline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vbauerster/mpb/v8/decor"
)

func TestProgressListener_Disabled(t *testing.T) {
	pl := NewProgressListener(ProgressConfig{Enabled: false}, "meeting1")

	assert.NotPanics(t, func() {
		pl.StageStarted(StagePersist)
		pl.StageFinished(StagePersist, nil)
		pl.Wait()
	})
}

func TestProgressListener_CompletesAllStages(t *testing.T) {
	var out bytes.Buffer
	pl := NewProgressListener(ProgressConfig{Enabled: true, Writer: &out}, "meeting1")

	for _, stage := range Stages {
		pl.StageStarted(stage)
		pl.StageFinished(stage, nil)
	}
	pl.Wait()

	assert.True(t, pl.bar.Completed())
	assert.Contains(t, out.String(), "meeting1")
}

func TestProgressListener_FailureAborts(t *testing.T) {
	var out bytes.Buffer
	pl := NewProgressListener(ProgressConfig{Enabled: true, Writer: &out}, "meeting1")

	pl.StageStarted(StagePersist)
	pl.StageFinished(StagePersist, nil)
	pl.StageStarted(StageTranscribe)
	pl.StageFinished(StageTranscribe, errors.New("boom"))
	pl.Wait()

	assert.True(t, pl.bar.Aborted())
	assert.Equal(t, "transcribe failed", pl.stageName(decor.Statistics{}))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.True(t, ShouldShowProgress(true))
}
