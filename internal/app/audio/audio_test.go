package audio

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbe(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		is16kHz  bool
		parseErr bool
	}{
		{
			name:    "16kHz pcm",
			output:  `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"16000"}]}`,
			is16kHz: true,
		},
		{
			name:    "44.1kHz pcm",
			output:  `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"44100"}]}`,
			is16kHz: false,
		},
		{
			name:    "mp3 stream",
			output:  `{"streams":[{"codec_type":"audio","codec_name":"mp3","sample_rate":"16000"}]}`,
			is16kHz: false,
		},
		{
			name:    "no streams",
			output:  `{"streams":[]}`,
			is16kHz: false,
		},
		{
			name:     "garbage",
			output:   `not json`,
			parseErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe, err := ParseProbe([]byte(tt.output))
			if tt.parseErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.is16kHz, probe.Is16kHzWav())
		})
	}
}

func TestConvertedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/work", "meeting1_16khz.wav"), ConvertedPath("/data/out/meeting1.wav", "/tmp/work"))
	assert.Equal(t, filepath.Join("w", "call_16khz.wav"), ConvertedPath("call.m4a", "w"))
}

func TestConvertTo16kHzWav_MissingInput(t *testing.T) {
	_, err := ConvertTo16kHzWav(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), t.TempDir())
	assert.Error(t, err)
}

func TestIs16kHzWavFile_RequiresFFprobe(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	_, err := Is16kHzWavFile(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
