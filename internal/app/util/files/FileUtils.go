package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	apperrors "audio-summarizer/internal/app/errors"
)

// AllowedAudioExtensions is the upload allow-list, without dots.
var AllowedAudioExtensions = []string{"mp3", "wav", "m4a"}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsAllowedAudio reports whether name carries an allow-listed audio extension.
func IsAllowedAudio(name string) bool {
	return lo.Contains(AllowedAudioExtensions, Extension(name))
}

// BaseName strips any directory components and the extension from an
// uploaded file name. Uploads are named by the client, so "../x.wav" maps to "x".
func BaseName(uploadName string) (string, error) {
	name := filepath.Base(filepath.ToSlash(strings.ReplaceAll(uploadName, `\`, "/")))
	if name == "." || name == "/" || name == "" {
		return "", apperrors.ErrNoFile
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimSpace(base)
	if base == "" {
		return "", apperrors.Wrapf(apperrors.ErrUnsupportedFormat, "file name %q has no base name", uploadName)
	}
	return base, nil
}

// EnsureDir creates dir and its parents if they are missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Mark(fmt.Errorf("create directory %s: %w", dir, err), apperrors.ErrFileWrite)
	}
	return nil
}

// WriteFile writes data to path, truncating any previous content.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Mark(err, apperrors.ErrFileWrite)
	}
	return nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", apperrors.Mark(err, apperrors.ErrFileRead)
	}

	return strings.TrimSpace(string(content)), nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
