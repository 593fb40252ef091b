package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	apierrors "audio-summarizer/internal/api/errors"
	"audio-summarizer/internal/api/middleware"
	"audio-summarizer/internal/api/v1/dto"
	"audio-summarizer/internal/api/v1/services"
	"audio-summarizer/internal/api/web"
	"audio-summarizer/internal/app/model"
	"audio-summarizer/internal/app/util/files"
)

// PageForm holds the values shown in the upload form.
type PageForm struct {
	Date   string
	Time   string
	Agenda string
	Venue  string
}

// PageData is rendered by the shell template.
type PageData struct {
	Accept string
	Form   PageForm
	Run    *dto.RunResponse
	Error  string
}

// PageHandler serves the single-page HTML shell
type PageHandler struct {
	service        services.RunService
	maxUploadBytes int64
	now            func() time.Time
}

// NewPageHandler creates a new page handler
func NewPageHandler(service services.RunService, maxUploadBytes int64) *PageHandler {
	return &PageHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// AcceptAttr is the file picker filter built from the extension allow-list.
func AcceptAttr() string {
	return strings.Join(lo.Map(files.AllowedAudioExtensions, func(ext string, _ int) string {
		return "." + ext
	}), ",")
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, h.defaultForm(), nil, "")
}

// Submit handles POST / and runs the pipeline for the posted file.
func (h *PageHandler) Submit(c *gin.Context) {
	upload, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		h.renderError(c, h.defaultForm(), err)
		return
	}

	var form dto.CreateRunForm
	if err := middleware.ValidateForm(c, &form); err != nil {
		h.renderError(c, PageForm(form), err)
		return
	}

	run, err := h.service.CreateRun(c.Request.Context(), upload, form)
	if err != nil {
		h.renderError(c, PageForm(form), err)
		return
	}

	h.render(c, http.StatusOK, formFromRun(run), run, "")
}

// Save handles POST /runs/:id/save
func (h *PageHandler) Save(c *gin.Context) {
	var uri dto.RunURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		h.renderError(c, h.defaultForm(), err)
		return
	}

	if _, err := h.service.SaveRun(c.Request.Context(), uri.ID); err != nil {
		h.renderRunError(c, uri.ID, err)
		return
	}

	run, err := h.service.GetRun(c.Request.Context(), uri.ID)
	if err != nil {
		h.renderError(c, h.defaultForm(), err)
		return
	}
	h.render(c, http.StatusOK, formFromRun(run), run, "")
}

// Download handles GET /runs/:id/download
func (h *PageHandler) Download(c *gin.Context) {
	var uri dto.RunURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	serveReport(c, h.service, uri.ID)
}

func (h *PageHandler) defaultForm() PageForm {
	meta := model.DefaultMetadata(h.now())
	return PageForm{
		Date:   meta.DateString(),
		Time:   meta.TimeString(),
		Agenda: meta.Agenda,
		Venue:  meta.Venue,
	}
}

func formFromRun(run *dto.RunResponse) PageForm {
	return PageForm{Date: run.Date, Time: run.Time, Agenda: run.Agenda, Venue: run.Venue}
}

// renderRunError keeps the run on screen when a save fails.
func (h *PageHandler) renderRunError(c *gin.Context, id string, err error) {
	apiErr := apierrors.FromDomain(err)
	_ = c.Error(err)

	run, getErr := h.service.GetRun(c.Request.Context(), id)
	if getErr != nil {
		h.render(c, apiErr.HTTPStatus(), h.defaultForm(), nil, describe(apiErr))
		return
	}
	h.render(c, apiErr.HTTPStatus(), formFromRun(run), run, describe(apiErr))
}

func (h *PageHandler) renderError(c *gin.Context, form PageForm, err error) {
	apiErr := apierrors.FromDomain(err)
	_ = c.Error(err)
	h.render(c, apiErr.HTTPStatus(), form, nil, describe(apiErr))
}

// describe flattens an APIError and its field details into one line.
func describe(apiErr *apierrors.APIError) string {
	if len(apiErr.Details) == 0 {
		return apiErr.Message
	}
	details := lo.MapToSlice(apiErr.Details, func(field, msg string) string {
		return field + " " + msg
	})
	sort.Strings(details)
	return apiErr.Message + ": " + strings.Join(details, "; ")
}

func (h *PageHandler) render(c *gin.Context, status int, form PageForm, run *dto.RunResponse, message string) {
	c.HTML(status, web.PageTemplate, PageData{
		Accept: AcceptAttr(),
		Form:   form,
		Run:    run,
		Error:  message,
	})
}
