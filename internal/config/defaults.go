package config

import "time"

const (
	DefaultOutputDir = "output"

	DefaultHost         = "0.0.0.0"
	DefaultHTTPPort     = "8080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 10 * time.Minute
	DefaultIdleTimeout  = 60 * time.Second
	DefaultMaxUploadMB  = 200

	DefaultWhisperCppBinary = "whisper-cli"
	DefaultWhisperCppModel  = "models/ggml-base.bin"

	DefaultMinLength = 100
	DefaultMaxLength = 300
	DefaultSeed      = 42
)
