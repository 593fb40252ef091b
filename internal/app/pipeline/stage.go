package pipeline

// Stage names one step of a run.
type Stage string

const (
	StagePersist    Stage = "persist"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageFormat     Stage = "format"
)

// Stages lists the stages in execution order.
var Stages = []Stage{StagePersist, StageTranscribe, StageSummarize, StageFormat}

// StageListener is notified as a run moves through its stages. Listeners are
// called on the goroutine executing the run.
type StageListener interface {
	StageStarted(stage Stage)
	StageFinished(stage Stage, err error)
}

// NopListener ignores stage events.
type NopListener struct{}

func (NopListener) StageStarted(Stage)         {}
func (NopListener) StageFinished(Stage, error) {}
