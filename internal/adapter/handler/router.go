package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boardwatchnyc/boardwatch/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	if rt.meetingHandler != nil {
		e.GET("/health", rt.meetingHandler.Health)
	} else {
		e.GET("/health", rt.healthCheck)
	}

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupProcessRoutes(v1)
	rt.setupBoardRoutes(v1)
}

// setupProcessRoutes configures video processing routes
func (rt *Router) setupProcessRoutes(g *echo.Group) {
	processGroup := g.Group("/process")

	if rt.meetingHandler != nil {
		processGroup.POST("/youtube", rt.meetingHandler.ProcessYouTube)
		processGroup.POST("/file", rt.meetingHandler.ProcessFile)
		processGroup.GET("/:job_id", rt.meetingHandler.JobStatus)
		processGroup.GET("/:job_id/report", rt.meetingHandler.JobReport)
	} else {
		processGroup.POST("/youtube", rt.notImplemented)
		processGroup.POST("/file", rt.notImplemented)
		processGroup.GET("/:job_id", rt.notImplemented)
		processGroup.GET("/:job_id/report", rt.notImplemented)
	}
}

// setupBoardRoutes configures community board listing routes
func (rt *Router) setupBoardRoutes(g *echo.Group) {
	boardGroup := g.Group("/boards")

	if rt.meetingHandler != nil {
		boardGroup.GET("", rt.meetingHandler.ListBoards)
		boardGroup.GET("/:number/meetings", rt.meetingHandler.ListMeetings)
		boardGroup.GET("/:number/meetings/:video_id/report", rt.meetingHandler.MeetingReport)
	} else {
		boardGroup.GET("", rt.notImplemented)
		boardGroup.GET("/:number/meetings", rt.notImplemented)
		boardGroup.GET("/:number/meetings/:video_id/report", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
