package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"audio-summarizer/internal/app/model"
)

// End-to-end meeting scenario.
const (
	SampleFileName   = "meeting1.wav"
	SampleTranscript = "Hello world. This is a test."
	SampleSummary    = "Hello world. This is a test."
)

// SampleKeyPoints are the key points derived from SampleSummary.
var SampleKeyPoints = []string{"Hello world.", "This is a test."}

// SampleNow is the clock used when a test needs default metadata.
var SampleNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

// SampleMetadata returns the default metadata at SampleNow.
func SampleMetadata() model.MeetingMetadata {
	return model.DefaultMetadata(SampleNow)
}

// WAVBytes returns a valid, silent 16 kHz mono PCM WAV of the given length.
func WAVBytes(samples int) []byte {
	const (
		sampleRate    = 16000
		bitsPerSample = 16
		channels      = 1
	)
	dataSize := samples * channels * bitsPerSample / 8
	buf := make([]byte, 44+dataSize)

	copy(buf[0:], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], uint32(36+dataSize))
	copy(buf[8:], "WAVE")
	copy(buf[12:], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], 1)
	binary.LittleEndian.PutUint16(buf[22:], channels)
	binary.LittleEndian.PutUint32(buf[24:], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:], sampleRate*channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(buf[32:], channels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(buf[34:], bitsPerSample)
	copy(buf[36:], "data")
	binary.LittleEndian.PutUint32(buf[40:], uint32(dataSize))
	return buf
}

// SampleUpload is the meeting1.wav upload of the end-to-end scenario.
func SampleUpload() model.UploadedAudio {
	return model.UploadedAudio{FileName: SampleFileName, Data: WAVBytes(1600)}
}

// WriteAudio writes data under dir and returns its path.
func WriteAudio(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
