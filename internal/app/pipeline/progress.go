package pipeline

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressListener renders a run's stages as a terminal progress bar.
type ProgressListener struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool

	mu      sync.Mutex
	current Stage
	failed  bool
}

var _ StageListener = (*ProgressListener)(nil)

func NewProgressListener(config ProgressConfig, description string) *ProgressListener {
	if !config.Enabled {
		return &ProgressListener{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	pl := &ProgressListener{enabled: true}
	// mpb only refreshes a terminal by itself; a forced bar on a pipe or
	// file needs auto refresh.
	pl.container = mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithAutoRefresh(),
	)
	pl.bar = pl.container.AddBar(int64(len(Stages)),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.Any(pl.stageName, decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncSpace),
			decor.OnComplete(
				decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " ✓ ",
			),
		),
	)
	return pl
}

func (pl *ProgressListener) stageName(decor.Statistics) string {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	if pl.failed {
		return string(pl.current) + " failed"
	}
	return string(pl.current)
}

func (pl *ProgressListener) StageStarted(stage Stage) {
	if !pl.enabled {
		return
	}
	pl.mu.Lock()
	pl.current = stage
	pl.mu.Unlock()
}

func (pl *ProgressListener) StageFinished(stage Stage, err error) {
	if !pl.enabled {
		return
	}
	if err != nil {
		pl.mu.Lock()
		pl.failed = true
		pl.mu.Unlock()
		pl.bar.Abort(false)
		return
	}
	pl.bar.Increment()
}

// Wait blocks until the bar has been rendered for the last time. A run
// that stopped early aborts the bar so Wait does not block.
func (pl *ProgressListener) Wait() {
	if pl.enabled && pl.container != nil {
		if !pl.bar.Completed() && !pl.bar.Aborted() {
			pl.bar.Abort(false)
		}
		pl.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
