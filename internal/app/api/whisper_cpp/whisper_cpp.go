package whisper_cpp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	"audio-summarizer/internal/app/audio"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/util/files"
)

// Config points at a whisper.cpp build and model file.
type Config struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	config Config
	logger *zap.Logger

	probe   func(ctx context.Context, path string) (bool, error)
	convert  func(ctx context.Context, path, dir string) (string, error)
	duration func(ctx context.Context, path string) (float64, error)
}

var _ api.Transcriber = (*LocalTranscriber)(nil)

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(config Config, logger *zap.Logger) *LocalTranscriber {
	if config.Language == "" {
		config.Language = "auto"
	}
	return &LocalTranscriber{
		config:   config,
		logger:   logger,
		probe:    audio.Is16kHzWavFile,
		convert:  audio.ConvertTo16kHzWav,
		duration: audio.GetAudioDuration,
	}
}

// Args is the whisper.cpp command line for one input file.
func (lt *LocalTranscriber) Args(inputFilePath, outputPrefix string) []string {
	args := []string{
		"-m", lt.config.ModelPath,
		"-l", lt.config.Language,
		"-np",
		"-otxt",
		"-f", inputFilePath,
		"-of", outputPrefix,
	}
	if lt.config.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(lt.config.Threads))
	}
	if lt.config.Prompt != "" {
		args = append(args, "--prompt", lt.config.Prompt)
	}
	return args
}

// Transcribe converts the input to 16 kHz WAV when needed, runs whisper.cpp
// and reads back the text output.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.Transcription, error) {
	workDir, err := os.MkdirTemp("", "whisper-cpp-*")
	if err != nil {
		return nil, apperrors.Mark(fmt.Errorf("create work dir: %w", err), apperrors.ErrTranscription)
	}
	defer os.RemoveAll(workDir)

	inputFilePath := req.AudioPath
	is16kHzWav, err := lt.probe(ctx, inputFilePath)
	if err != nil {
		return nil, apperrors.Mark(fmt.Errorf("error checking input file: %w", err), apperrors.ErrTranscription)
	}

	if !is16kHzWav {
		lt.logger.Debug("converting input to 16kHz wav", zap.String("path", inputFilePath))
		inputFilePath, err = lt.convert(ctx, inputFilePath, workDir)
		if err != nil {
			return nil, apperrors.Mark(fmt.Errorf("error converting input file: %w", err), apperrors.ErrTranscription)
		}
	}

	outputPrefix := filepath.Join(workDir, "transcript")
	args := lt.Args(inputFilePath, outputPrefix)

	command := exec.CommandContext(ctx, lt.config.BinaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	lt.logger.Info("running whisper.cpp",
		zap.String("binary", lt.config.BinaryPath),
		zap.String("args", strings.Join(args, " ")),
	)

	if err := command.Run(); err != nil {
		return nil, apperrors.Mark(fmt.Errorf("command execution error: %w, stderr: %s", err, stderr.String()), apperrors.ErrTranscription)
	}

	text, err := files.ReadOutputFile(outputPrefix + ".txt")
	if err != nil {
		return nil, apperrors.Mark(err, apperrors.ErrTranscription)
	}

	// Duration is informational only.
	duration, err := lt.duration(ctx, inputFilePath)
	if err != nil {
		lt.logger.Debug("could not read audio duration", zap.Error(err))
	}

	return &model.Transcription{
		Text:     text,
		Language: lt.config.Language,
		Duration: duration,
		Model:    filepath.Base(lt.config.ModelPath),
	}, nil
}
