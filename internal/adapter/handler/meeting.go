package handler

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	meetingDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Upload handles POST /meetings/upload
// @Summary      Upload a meeting recording
// @Description  Accepts an audio file, stores it and runs the enrichment pipeline
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true   "Audio file"
// @Param        title  formData  string  false  "Meeting title, defaults to the filename"
// @Success      200  {object}  meeting.MeetingResponse  "Enriched meeting"
// @Failure      400  {object}  map[string]interface{}   "Unsupported file type"
// @Failure      413  {object}  map[string]interface{}   "File too large"
// @Failure      502  {object}  map[string]interface{}   "Inference provider failure"
// @Router       /meetings/upload [post]
func (h *Meeting) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("audio file is required"))
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		title = strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}
	defer file.Close()

	meeting, err := h.meetingService.Upload(c.Request().Context(), meetingUsecase.UploadInput{
		Title:       title,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(meeting))
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Returns all meetings, newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  meeting.ListMeetingsResponse
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.meetingService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListMeetingsResponse(meetings))
}

// Get handles GET /meetings/:id
// @Summary      Get meeting details
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	meeting, err := h.meetingService.Get(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(meeting))
}

// Translate handles POST /meetings/translate
// @Summary      Translate a meeting transcription
// @Description  Returns the stored translation for the language pair, creating it on first request
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.TranslateRequest  true  "Translation request"
// @Success      200  {object}  meeting.TranslationResponse
// @Failure      400  {object}  map[string]interface{}  "Meeting has no transcription"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/translate [post]
func (h *Meeting) Translate(c echo.Context) error {
	var req meetingDTO.TranslateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}

	translation, err := h.meetingService.Translate(c.Request().Context(), meetingID, req.TargetLanguage)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToTranslationResponse(translation))
}

// ListTranslations handles GET /meetings/:id/translations
// @Summary      List translations of a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.ListTranslationsResponse
// @Router       /meetings/{id}/translations [get]
func (h *Meeting) ListTranslations(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	translations, err := h.meetingService.ListTranslations(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToListTranslationsResponse(translations))
}
