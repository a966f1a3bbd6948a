package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	insightsDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/insights"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/presenter"
	insightsUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/insights"
)

// Insights handles cross-meeting aggregation HTTP requests
type Insights struct {
	insightsService *insightsUsecase.Service
	logger          *zap.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService *insightsUsecase.Service, logger *zap.Logger) *Insights {
	return &Insights{
		insightsService: insightsService,
		logger:          logger,
	}
}

// CrossMeeting handles POST /insights/cross-meeting
// @Summary      Aggregate insights across meetings
// @Description  Groups action items by owner and counts decisions over the selected meetings
// @Tags         Insights
// @Accept       json
// @Produce      json
// @Param        request  body      insights.CrossMeetingRequest  true  "Meeting selection"
// @Success      200  {object}  insights.CrossMeetingResponse
// @Router       /insights/cross-meeting [post]
func (h *Insights) CrossMeeting(c echo.Context) error {
	var req insightsDTO.CrossMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	meetingIDs := make([]uuid.UUID, 0, len(req.MeetingIDs))
	for _, raw := range req.MeetingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_ids must be valid UUIDs"))
		}
		meetingIDs = append(meetingIDs, id)
	}

	result, err := h.insightsService.Aggregate(c.Request().Context(), meetingIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToCrossMeetingResponse(result))
}
