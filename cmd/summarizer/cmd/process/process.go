package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"audio-summarizer/cmd/summarizer/cmd/bootstrap"
	"audio-summarizer/internal/api/v1/dto"
	"audio-summarizer/internal/api/v1/services"
	"audio-summarizer/internal/app"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/pipeline"
)

// Options are the flags of one process invocation.
type Options struct {
	AudioPath string
	Form      dto.CreateRunForm
	Save      bool
	Progress  bool
}

var opts Options

func init() {
	Cmd.Flags().StringVarP(&opts.Form.Date, "date", "d", "", "meeting date as YYYY-MM-DD (default today)")
	Cmd.Flags().StringVarP(&opts.Form.Time, "time", "t", "", "meeting time as HH:MM[:SS] (default now)")
	Cmd.Flags().StringVarP(&opts.Form.Agenda, "agenda", "a", "", "meeting agenda")
	Cmd.Flags().StringVar(&opts.Form.Venue, "venue", "", "meeting venue")
	Cmd.Flags().BoolVarP(&opts.Save, "save", "s", false, "write <name>_summary.txt to the output directory")
	Cmd.Flags().BoolVar(&opts.Progress, "progress", false, "show the stage progress bar even without a terminal")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Transcribe and summarize one audio file",
	Long: `Transcribe and summarize one audio file.

- The report is printed to stdout
- Pass --save to also write <name>_summary.txt to the output directory`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap.Load(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		runner, cleanup := app.InitializeRunner(cfg, logger, nil)
		defer cleanup()

		opts.AudioPath = args[0]
		listener := pipeline.NewProgressListener(pipeline.ProgressConfig{
			Enabled: pipeline.ShouldShowProgress(opts.Progress),
			Writer:  cmd.ErrOrStderr(),
		}, filepath.Base(opts.AudioPath))

		return Run(cmd.Context(), runner, opts, listener, time.Now(), cmd.OutOrStdout())
	},
}

// Run runs the pipeline on the audio file and prints the report to out.
// Metadata flags that are empty or unparseable fall back to defaults. The
// report is written to disk only when opts.Save is set.
func Run(ctx context.Context, runner services.Runner, opts Options, listener *pipeline.ProgressListener, now time.Time, out io.Writer) error {
	data, err := os.ReadFile(opts.AudioPath)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrFileRead, "%s: %v", opts.AudioPath, err)
	}

	upload := model.UploadedAudio{FileName: filepath.Base(opts.AudioPath), Data: data}
	run, err := runner.Run(ctx, upload, opts.Form.Metadata(now), listener)
	listener.Wait()
	if err != nil {
		return err
	}

	fmt.Fprint(out, run.Report)

	if !opts.Save {
		return nil
	}
	path, err := runner.SaveReport(run)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nReport saved to %s\n", path)
	return nil
}
