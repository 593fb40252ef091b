package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ProbeOutput is the subset of `ffprobe -show_streams -print_format json` we read.
type ProbeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
	} `json:"streams"`
}

// Is16kHzWav reports whether the probe describes 16 kHz PCM audio, the input
// whisper.cpp expects.
func (p ProbeOutput) Is16kHzWav() bool {
	for _, stream := range p.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true
		}
	}
	return false
}

// ParseProbe decodes ffprobe JSON output.
func ParseProbe(output []byte) (ProbeOutput, error) {
	var probe ProbeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return ProbeOutput{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	return probe, nil
}

// GetAudioDuration returns the duration of filePath in seconds.
func GetAudioDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	return strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
}

// Is16kHzWavFile probes filePath with ffprobe.
func Is16kHzWavFile(ctx context.Context, filePath string) (bool, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("ffprobe streams: %w", err)
	}

	probe, err := ParseProbe(output)
	if err != nil {
		return false, err
	}
	return probe.Is16kHzWav(), nil
}

// ConvertedPath is where a 16 kHz copy of inputFilePath is written inside dir.
func ConvertedPath(inputFilePath, dir string) string {
	name := strings.TrimSuffix(filepath.Base(inputFilePath), filepath.Ext(inputFilePath)) + "_16khz.wav"
	return filepath.Join(dir, name)
}

// ConvertTo16kHzWav transcodes inputFilePath into a mono 16 kHz PCM WAV in dir.
// ffmpeg detects the input container from its content, so an mp3 stored
// under a .wav name converts fine.
func ConvertTo16kHzWav(ctx context.Context, inputFilePath, dir string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", fmt.Errorf("audio input: %w", err)
	}

	outputPath := ConvertedPath(inputFilePath, dir)
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputPath, nil
}
