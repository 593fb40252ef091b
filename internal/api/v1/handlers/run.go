package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-summarizer/internal/api/middleware"
	"audio-summarizer/internal/api/v1/dto"
	"audio-summarizer/internal/api/v1/services"
)

// RunHandler handles the JSON run endpoints
type RunHandler struct {
	service        services.RunService
	maxUploadBytes int64
}

// NewRunHandler creates a new run handler
func NewRunHandler(service services.RunService, maxUploadBytes int64) *RunHandler {
	return &RunHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Create handles POST /api/v1/runs
//
// @Summary Upload audio and run the pipeline
// @Description Transcribes and summarizes the uploaded audio and formats the report. The report is not written to disk until it is saved.
// @Tags runs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (mp3, wav or m4a)"
// @Param date formData string false "Meeting date (YYYY-MM-DD)"
// @Param time formData string false "Meeting time (HH:MM or HH:MM:SS)"
// @Param agenda formData string false "Meeting agenda"
// @Param venue formData string false "Meeting venue"
// @Success 201 {object} dto.RunResponse "Run completed"
// @Failure 400 {object} errors.APIError "No file uploaded"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Transcription or summarization failed"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /runs [post]
func (h *RunHandler) Create(c *gin.Context) {
	upload, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var form dto.CreateRunForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.CreateRun(c.Request.Context(), upload, form)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/v1/runs/:id
//
// @Summary Get a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID" format(uuid)
// @Success 200 {object} dto.RunResponse "Run details"
// @Failure 404 {object} errors.APIError "Run not found"
// @Failure 422 {object} errors.APIError "Invalid run ID"
// @Router /runs/{id} [get]
func (h *RunHandler) Get(c *gin.Context) {
	var uri dto.RunURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.GetRun(c.Request.Context(), uri.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Save handles POST /api/v1/runs/:id/save
//
// @Summary Save the report
// @Description Writes the report to <name>_summary.txt in the output directory, replacing an earlier file of the same name.
// @Tags runs
// @Produce json
// @Param id path string true "Run ID" format(uuid)
// @Success 200 {object} dto.SaveResponse "Report saved"
// @Failure 404 {object} errors.APIError "Run not found"
// @Failure 500 {object} errors.APIError "Report could not be written"
// @Router /runs/{id}/save [post]
func (h *RunHandler) Save(c *gin.Context) {
	var uri dto.RunURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SaveRun(c.Request.Context(), uri.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Download handles GET /api/v1/runs/:id/download
//
// @Summary Download the saved report
// @Tags runs
// @Produce plain
// @Param id path string true "Run ID" format(uuid)
// @Success 200 {file} file "Report text"
// @Failure 404 {object} errors.APIError "Run not found or report not saved"
// @Router /runs/{id}/download [get]
func (h *RunHandler) Download(c *gin.Context) {
	var uri dto.RunURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	serveReport(c, h.service, uri.ID)
}

func serveReport(c *gin.Context, service services.RunService, id string) {
	report, err := service.ReportFile(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.FileAttachment(report.Path, report.FileName)
}
