package main

import (
	"fmt"
	"os"

	"audio-summarizer/cmd/summarizer/cmd"
	"audio-summarizer/internal/config"
)

// @title Audio Summarizer API
// @version 1.0
// @description Upload a meeting recording, get a transcript, a key-point summary and a downloadable report.
// @BasePath /api/v1
func main() {
	// Missing .env is fine; keys may come from the real environment.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
