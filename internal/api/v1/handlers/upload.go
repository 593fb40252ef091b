package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "audio-summarizer/internal/api/errors"
	apperrors "audio-summarizer/internal/app/errors"
	"audio-summarizer/internal/app/model"
)

// UploadField is the multipart field carrying the audio file.
const UploadField = "file"

// readUpload reads the uploaded audio into memory. A request without a file
// is reported as apperrors.ErrNoFile so no pipeline run starts.
func readUpload(c *gin.Context, maxBytes int64) (model.UploadedAudio, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	header, err := c.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return model.UploadedAudio{}, apierrors.NewBadRequestError("uploaded file is too large")
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return model.UploadedAudio{}, apperrors.ErrNoFile
		default:
			return model.UploadedAudio{}, apierrors.NewBadRequestError("invalid multipart upload")
		}
	}

	file, err := header.Open()
	if err != nil {
		return model.UploadedAudio{}, apperrors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return model.UploadedAudio{}, apperrors.Wrap(err, "failed to read uploaded file")
	}

	return model.UploadedAudio{FileName: header.Filename, Data: data}, nil
}
