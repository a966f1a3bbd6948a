package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	searchHandler   *Search
	insightsHandler *Insights
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, searchHandler *Search, insightsHandler *Insights) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		searchHandler:   searchHandler,
		insightsHandler: insightsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupInsightsRoutes(v1)
}

// setupMeetingRoutes configures meeting lifecycle, search and translation routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("/upload", rt.meetingHandler.Upload)
	meetings.GET("", rt.meetingHandler.List)
	meetings.POST("/search", rt.searchHandler.Search)
	meetings.POST("/translate", rt.meetingHandler.Translate)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.GET("/:id/similar", rt.searchHandler.Similar)
	meetings.GET("/:id/translations", rt.meetingHandler.ListTranslations)
}

// setupInsightsRoutes configures cross-meeting aggregation routes
func (rt *Router) setupInsightsRoutes(g *echo.Group) {
	insights := g.Group("/insights")

	insights.POST("/cross-meeting", rt.insightsHandler.CrossMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
