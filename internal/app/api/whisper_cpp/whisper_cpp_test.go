package whisper_cpp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"audio-summarizer/internal/app/api"
	apperrors "audio-summarizer/internal/app/errors"
)

const fakeWhisper = `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-of" ]; then out="$2"; fi
  shift
done
printf ' Hello world. This is a test.\n' > "$out.txt"
`

func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script binary not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "whisper-cli")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestTranscriber(t *testing.T, binary string) *LocalTranscriber {
	lt := NewLocalTranscriber(Config{BinaryPath: binary, ModelPath: "/models/ggml-base.bin"}, zap.NewNop())
	lt.probe = func(ctx context.Context, path string) (bool, error) { return true, nil }
	lt.convert = func(ctx context.Context, path, dir string) (string, error) {
		t.Fatalf("unexpected conversion of %s", path)
		return "", nil
	}
	lt.duration = func(ctx context.Context, path string) (float64, error) { return 12.5, nil }
	return lt
}

func TestLocalTranscriber_Transcribe(t *testing.T) {
	lt := newTestTranscriber(t, fakeBinary(t, fakeWhisper))

	result, err := lt.Transcribe(context.Background(), &api.TranscriptionRequest{AudioPath: "/data/meeting1.wav"})
	require.NoError(t, err)

	assert.Equal(t, "Hello world. This is a test.", result.Text)
	assert.Equal(t, "ggml-base.bin", result.Model)
	assert.Equal(t, "auto", result.Language)
	assert.Equal(t, 12.5, result.Duration)
}

func TestLocalTranscriber_DurationUnavailable(t *testing.T) {
	lt := newTestTranscriber(t, fakeBinary(t, fakeWhisper))
	lt.duration = func(ctx context.Context, path string) (float64, error) { return 0, errors.New("no ffprobe") }

	result, err := lt.Transcribe(context.Background(), &api.TranscriptionRequest{AudioPath: "/data/meeting1.wav"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world. This is a test.", result.Text)
	assert.Zero(t, result.Duration)
}

func TestLocalTranscriber_ConvertsNon16kHzInput(t *testing.T) {
	lt := newTestTranscriber(t, fakeBinary(t, fakeWhisper))
	lt.probe = func(ctx context.Context, path string) (bool, error) { return false, nil }

	var converted string
	lt.convert = func(ctx context.Context, path, dir string) (string, error) {
		converted = path
		return filepath.Join(dir, "converted.wav"), nil
	}

	_, err := lt.Transcribe(context.Background(), &api.TranscriptionRequest{AudioPath: "/data/meeting1.wav"})
	require.NoError(t, err)
	assert.Equal(t, "/data/meeting1.wav", converted)
}

func TestLocalTranscriber_BinaryFailure(t *testing.T) {
	lt := newTestTranscriber(t, fakeBinary(t, "#!/bin/sh\necho 'failed to load model' >&2\nexit 3\n"))

	_, err := lt.Transcribe(context.Background(), &api.TranscriptionRequest{AudioPath: "/data/meeting1.wav"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscription))
	assert.Contains(t, err.Error(), "failed to load model")
}

func TestLocalTranscriber_ProbeFailure(t *testing.T) {
	lt := newTestTranscriber(t, "/nonexistent")
	lt.probe = func(ctx context.Context, path string) (bool, error) { return false, errors.New("ffprobe missing") }

	_, err := lt.Transcribe(context.Background(), &api.TranscriptionRequest{AudioPath: "/data/meeting1.wav"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTranscription))
}

func TestLocalTranscriber_Args(t *testing.T) {
	lt := NewLocalTranscriber(Config{
		BinaryPath: "whisper-cli",
		ModelPath:  "ggml-base.bin",
		Language:   "en",
		Prompt:     "Quarterly review",
		Threads:    4,
	}, zap.NewNop())

	args := lt.Args("in.wav", "/tmp/out")
	assert.Equal(t, []string{
		"-m", "ggml-base.bin",
		"-l", "en",
		"-np",
		"-otxt",
		"-f", "in.wav",
		"-of", "/tmp/out",
		"-t", "4",
		"--prompt", "Quarterly review",
	}, args)
}
