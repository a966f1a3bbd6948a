package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-intelligence/errors"
	searchDTO "github.com/johnquangdev/meeting-intelligence/internal/adapter/dto/search"
	"github.com/johnquangdev/meeting-intelligence/internal/adapter/presenter"
	searchUsecase "github.com/johnquangdev/meeting-intelligence/internal/usecase/search"
)

// Search handles semantic search HTTP requests
type Search struct {
	searchService *searchUsecase.Service
	logger        *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *searchUsecase.Service, logger *zap.Logger) *Search {
	return &Search{
		searchService: searchService,
		logger:        logger,
	}
}

// Search handles POST /meetings/search
// @Summary      Semantic search over meetings
// @Description  Embeds the query and ranks indexed meetings by cosine similarity
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      search.SearchRequest  true  "Search request"
// @Success      200  {object}  search.SearchResponse
// @Failure      502  {object}  map[string]interface{}  "Embedding provider failure"
// @Router       /meetings/search [post]
func (h *Search) Search(c echo.Context) error {
	var req searchDTO.SearchRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	results, err := h.searchService.Search(c.Request().Context(), req.Query, req.TopK)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSearchResponse(results))
}

// Similar handles GET /meetings/:id/similar
// @Summary      Find meetings similar to a given one
// @Tags         Search
// @Produce      json
// @Param        id     path   string  true   "Meeting ID (UUID)"
// @Param        top_k  query  int     false  "Maximum results"
// @Success      200  {object}  search.SearchResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id}/similar [get]
func (h *Search) Similar(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	topK := 0
	if raw := c.QueryParam("top_k"); raw != "" {
		topK, err = strconv.Atoi(raw)
		if err != nil || topK < 1 {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("top_k must be a positive integer"))
		}
	}

	results, err := h.searchService.FindSimilar(c.Request().Context(), meetingID, topK)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToSearchResponse(results))
}
