// Package report turns backend analysis results into structured meeting
// reports: parsed summaries, board attribution and rendered HTML.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/boardwatchnyc/boardwatch/errors"
	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
	"github.com/boardwatchnyc/boardwatch/internal/infrastructure/cache"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/board"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/summary"
	"github.com/boardwatchnyc/boardwatch/pkg/backend"
	"github.com/boardwatchnyc/boardwatch/pkg/config"
)

// analysisAPI is the slice of the backend client the service depends on.
type analysisAPI interface {
	Health(ctx context.Context) error
	ProcessYouTube(ctx context.Context, videoURL string) (*entities.ProcessingJob, error)
	ProcessFile(ctx context.Context, filename string, file io.Reader) (*entities.ProcessingJob, error)
	JobStatus(ctx context.Context, jobID string) (*entities.ProcessingJob, error)
	WaitForAnalysis(ctx context.Context, jobID string) (*entities.ProcessingJob, error)
	Meetings(ctx context.Context, boardNumber, limit int) ([]entities.MeetingRecord, error)
}

// Report is the assembled view of one analyzed meeting.
type Report struct {
	VideoID     string                   `json:"video_id,omitempty"`
	Title       string                   `json:"title"`
	Board       string                   `json:"board"`
	BoardNumber int                      `json:"board_number,omitempty"`
	Markdown    string                   `json:"markdown"`
	HTML        string                   `json:"html"`
	Summary     *entities.MeetingSummary `json:"summary"`
}

// Service builds reports and caches backend listings.
type Service struct {
	api    analysisAPI
	parser *summary.Parser
	store  cache.Store
	ttl    config.CacheConfig
	logger *zap.Logger
}

// NewService wires the report service together.
func NewService(api analysisAPI, store cache.Store, ttl config.CacheConfig, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		parser: summary.NewParser(),
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Health reports whether the analysis backend is reachable.
func (s *Service) Health(ctx context.Context) error {
	if err := s.api.Health(ctx); err != nil {
		return errors.ErrBackendUnavailable(err)
	}
	return nil
}

// SubmitYouTube starts processing of a YouTube video.
func (s *Service) SubmitYouTube(ctx context.Context, videoURL string) (*entities.ProcessingJob, error) {
	job, err := s.api.ProcessYouTube(ctx, videoURL)
	if err != nil {
		return nil, errors.ErrBackendRequestFailed("process-youtube", err)
	}
	s.logger.Info("job.submitted",
		zap.String("job_id", job.JobID),
		zap.String("source", "youtube"),
	)
	return job, nil
}

// SubmitFile starts processing of an uploaded video file.
func (s *Service) SubmitFile(ctx context.Context, filename string, file io.Reader) (*entities.ProcessingJob, error) {
	job, err := s.api.ProcessFile(ctx, filename, file)
	if err != nil {
		return nil, errors.ErrUploadFailed(err)
	}
	s.logger.Info("job.submitted",
		zap.String("job_id", job.JobID),
		zap.String("source", "file"),
		zap.String("filename", filename),
	)
	return job, nil
}

// JobStatus returns the current state of a processing job.
func (s *Service) JobStatus(ctx context.Context, jobID string) (*entities.ProcessingJob, error) {
	job, err := s.api.JobStatus(ctx, jobID)
	if err != nil {
		if stderrors.Is(err, backend.ErrNotFound) {
			return nil, errors.ErrJobNotFound(jobID)
		}
		return nil, errors.ErrBackendRequestFailed("process-status", err)
	}
	return job, nil
}

// ReportForJob blocks until the job completes, then builds its report.
func (s *Service) ReportForJob(ctx context.Context, jobID string) (*Report, error) {
	job, err := s.api.WaitForAnalysis(ctx, jobID)
	if err != nil {
		if job != nil && job.Status == entities.JobStatusFailed {
			return nil, errors.ErrProcessingFailed(err)
		}
		if stderrors.Is(err, backend.ErrNotFound) {
			return nil, errors.ErrJobNotFound(jobID)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.ErrProcessingTimeout(jobID)
		}
		return nil, errors.ErrBackendRequestFailed("process-status", err)
	}
	if job.Analysis == nil {
		return nil, errors.ErrReportGenerationFailed(fmt.Errorf("job %s completed without analysis", jobID))
	}

	return s.buildReport(job.VideoID, job.Title, job.Analysis)
}

// MeetingsByBoard lists processed meetings for one community board,
// serving from cache when a fresh listing is available.
func (s *Service) MeetingsByBoard(ctx context.Context, boardNumber, limit int) ([]entities.MeetingRecord, error) {
	if !entities.ValidBoardNumber(boardNumber) {
		return nil, errors.ErrInvalidBoardNumber(fmt.Sprintf("%d", boardNumber))
	}

	key := fmt.Sprintf("meetings:cb%d:%d", boardNumber, limit)
	if cached, ok := s.store.Get(ctx, key); ok {
		var meetings []entities.MeetingRecord
		if err := json.Unmarshal([]byte(cached), &meetings); err == nil {
			return meetings, nil
		}
		// Corrupt entry, drop it and refetch.
		s.store.Delete(ctx, key)
	}

	meetings, err := s.api.Meetings(ctx, boardNumber, limit)
	if err != nil {
		return nil, errors.ErrBackendRequestFailed("meetings", err)
	}

	if encoded, err := json.Marshal(meetings); err == nil {
		s.store.Set(ctx, key, string(encoded), s.ttl.MeetingsTTL)
	}

	return meetings, nil
}

// MeetingReport builds the report for one already-processed meeting.
func (s *Service) MeetingReport(ctx context.Context, boardNumber int, videoID string) (*Report, error) {
	if !entities.ValidBoardNumber(boardNumber) {
		return nil, errors.ErrInvalidBoardNumber(fmt.Sprintf("%d", boardNumber))
	}

	key := fmt.Sprintf("report:cb%d:%s", boardNumber, videoID)
	if cached, ok := s.store.Get(ctx, key); ok {
		var report Report
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
		s.store.Delete(ctx, key)
	}

	// Listing limit is generous so older meetings stay reachable.
	meetings, err := s.MeetingsByBoard(ctx, boardNumber, 100)
	if err != nil {
		return nil, err
	}

	for i := range meetings {
		m := &meetings[i]
		if m.VideoID != videoID {
			continue
		}
		if m.Analysis == nil {
			return nil, errors.ErrReportGenerationFailed(fmt.Errorf("meeting %s has no analysis", videoID))
		}

		report, err := s.buildReport(m.VideoID, m.Title, m.Analysis)
		if err != nil {
			return nil, err
		}
		if encoded, err := json.Marshal(report); err == nil {
			s.store.Set(ctx, key, string(encoded), s.ttl.ReportTTL)
		}
		return report, nil
	}

	return nil, errors.ErrMeetingNotFound(videoID)
}

// buildReport parses the analysis markdown, attributes the meeting to a
// board from its title and renders the document to HTML.
func (s *Service) buildReport(videoID, title string, analysis *entities.Analysis) (*Report, error) {
	document := summary.DocumentFor(analysis)
	parsed := s.parser.Parse(document)

	label := board.Label(title)
	number, _ := board.ExtractNumber(title)

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(document), &html); err != nil {
		return nil, errors.ErrReportGenerationFailed(err)
	}

	s.logger.Info("report.built",
		zap.String("video_id", videoID),
		zap.String("board", label),
		zap.Int("topics", len(parsed.Topics)),
	)

	return &Report{
		VideoID:     videoID,
		Title:       title,
		Board:       label,
		BoardNumber: number,
		Markdown:    document,
		HTML:        html.String(),
		Summary:     parsed,
	}, nil
}
