package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-summarizer/cmd/summarizer/cmd/bootstrap"
	"audio-summarizer/cmd/summarizer/cmd/process"
	"audio-summarizer/cmd/summarizer/cmd/serve"
	"audio-summarizer/cmd/summarizer/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "summarizer",
	Short: "Transcribe meeting recordings and summarize them into key points",
	Long: `Transcribe meeting recordings and summarize them into key points.

- serve starts the web page and the JSON API
- process runs one audio file from the command line
- Reports are written to <name>_summary.txt in the output directory only when saved`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringP(bootstrap.ConfigFlag, "c", "", "config file (default is ./config.yaml if present)")
	rootCmd.PersistentFlags().BoolP(bootstrap.VerboseFlag, "V", false, "verbose output")
}
