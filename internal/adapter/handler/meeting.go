package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/boardwatchnyc/boardwatch/errors"
	"github.com/boardwatchnyc/boardwatch/internal/adapter/dto/meeting"
	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/report"
)

const (
	defaultMeetingsLimit = 20
	healthProbeTimeout   = 5 * time.Second
)

// reportService is the slice of the report usecase the handler needs.
type reportService interface {
	Health(ctx context.Context) error
	SubmitYouTube(ctx context.Context, videoURL string) (*entities.ProcessingJob, error)
	SubmitFile(ctx context.Context, filename string, file io.Reader) (*entities.ProcessingJob, error)
	JobStatus(ctx context.Context, jobID string) (*entities.ProcessingJob, error)
	ReportForJob(ctx context.Context, jobID string) (*report.Report, error)
	MeetingsByBoard(ctx context.Context, boardNumber, limit int) ([]entities.MeetingRecord, error)
	MeetingReport(ctx context.Context, boardNumber int, videoID string) (*report.Report, error)
}

// Meeting handles meeting processing and report HTTP requests
type Meeting struct {
	service reportService
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service reportService, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// Health handles GET /health. The analysis backend is probed so the
// endpoint reflects whether the service can actually do useful work.
func (h *Meeting) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthProbeTimeout)
	defer cancel()

	backendStatus := "ok"
	status := http.StatusOK
	if err := h.service.Health(ctx); err != nil {
		backendStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"status":  "ok",
		"backend": backendStatus,
	})
}

// ProcessYouTube handles POST /v1/process/youtube
func (h *Meeting) ProcessYouTube(c echo.Context) error {
	var req meeting.ProcessYouTubeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("url must be a valid URL"))
	}

	job, err := h.service.SubmitYouTube(c.Request().Context(), req.URL)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewJobResponse(job))
}

// ProcessFile handles POST /v1/process/file
func (h *Meeting) ProcessFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadFailed(err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadFailed(err))
	}
	defer src.Close()

	job, err := h.service.SubmitFile(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewJobResponse(job))
}

// JobStatus handles GET /v1/process/:job_id
func (h *Meeting) JobStatus(c echo.Context) error {
	jobID := c.Param("job_id")
	if jobID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("job_id is required"))
	}

	job, err := h.service.JobStatus(c.Request().Context(), jobID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewJobResponse(job))
}

// JobReport handles GET /v1/process/:job_id/report. The call blocks
// until the job completes or the polling window closes.
func (h *Meeting) JobReport(c echo.Context) error {
	jobID := c.Param("job_id")
	if jobID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("job_id is required"))
	}

	rep, err := h.service.ReportForJob(c.Request().Context(), jobID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewReportResponse(rep))
}

// ListBoards handles GET /v1/boards
func (h *Meeting) ListBoards(c echo.Context) error {
	return HandleSuccess(h.logger, c, meeting.NewListBoardsResponse(entities.Boards()))
}

// ListMeetings handles GET /v1/boards/:number/meetings
func (h *Meeting) ListMeetings(c echo.Context) error {
	number, err := boardNumberParam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meeting.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("limit must be between 1 and 100"))
	}
	if req.Limit == 0 {
		req.Limit = defaultMeetingsLimit
	}

	meetings, err := h.service.MeetingsByBoard(c.Request().Context(), number, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewListMeetingsResponse(number, meetings))
}

// MeetingReport handles GET /v1/boards/:number/meetings/:video_id/report
func (h *Meeting) MeetingReport(c echo.Context) error {
	number, err := boardNumberParam(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	videoID := c.Param("video_id")
	if videoID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("video_id is required"))
	}

	rep, err := h.service.MeetingReport(c.Request().Context(), number, videoID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting.NewReportResponse(rep))
}

// boardNumberParam parses and range-checks the :number path parameter.
func boardNumberParam(c echo.Context) (int, error) {
	raw := c.Param("number")
	number, err := strconv.Atoi(raw)
	if err != nil || !entities.ValidBoardNumber(number) {
		return 0, errors.ErrInvalidBoardNumber(raw)
	}
	return number, nil
}
