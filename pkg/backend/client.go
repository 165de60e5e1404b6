// Package backend is a minimal HTTP client for the external meeting-analysis
// service. Transcription, AI analysis and persistence all live behind this
// API; the gateway only submits videos and reads results.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
	"github.com/boardwatchnyc/boardwatch/pkg/config"
	"github.com/boardwatchnyc/boardwatch/pkg/jobcontext"
)

// ErrNotFound is returned when the backend answers 404 for a resource.
var ErrNotFound = stderrors.New("backend: not found")

// Client talks to the analysis backend over plain HTTP.
type Client struct {
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	pollMaxWait  time.Duration
}

// NewClient creates a backend client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.BackendConfig) *Client {
	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("ANALYSIS_API_URL")
		if base == "" {
			base = "http://localhost:8000"
		}
	}

	timeout := 30 * time.Second
	pollInterval := 5 * time.Second
	pollMaxWait := 10 * time.Minute
	if cfg != nil {
		if cfg.RequestTimeout > 0 {
			timeout = cfg.RequestTimeout
		}
		if cfg.PollInterval > 0 {
			pollInterval = cfg.PollInterval
		}
		if cfg.PollMaxWait > 0 {
			pollMaxWait = cfg.PollMaxWait
		}
	}

	return &Client{
		baseURL:      base,
		client:       &http.Client{Timeout: timeout},
		pollInterval: pollInterval,
		pollMaxWait:  pollMaxWait,
	}
}

// Health probes the backend's /health endpoint, retrying transient
// failures a few times before reporting the backend as down.
func (c *Client) Health(ctx context.Context) error {
	op := func() error {
		err := c.do(ctx, http.MethodGet, "/health", nil, "", nil)
		if err != nil && !jobcontext.IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(op, bo)
}

// ProcessYouTube submits a YouTube URL for processing.
func (c *Client) ProcessYouTube(ctx context.Context, videoURL string) (*entities.ProcessingJob, error) {
	body, err := json.Marshal(map[string]string{"url": videoURL})
	if err != nil {
		return nil, err
	}

	var job entities.ProcessingJob
	if err := c.do(ctx, http.MethodPost, "/process-youtube", bytes.NewReader(body), "application/json", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ProcessFile uploads a video file for processing.
func (c *Client) ProcessFile(ctx context.Context, filename string, file io.Reader) (*entities.ProcessingJob, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var job entities.ProcessingJob
	if err := c.do(ctx, http.MethodPost, "/process-file", &buf, mw.FormDataContentType(), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// JobStatus fetches the current state of a processing job.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*entities.ProcessingJob, error) {
	var job entities.ProcessingJob
	if err := c.do(ctx, http.MethodGet, "/process-status/"+jobID, nil, "", &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// meetingsResponse is the listing endpoint's envelope.
type meetingsResponse struct {
	Meetings []entities.MeetingRecord `json:"meetings"`
}

// Meetings fetches processed meetings for one community board.
func (c *Client) Meetings(ctx context.Context, boardNumber, limit int) ([]entities.MeetingRecord, error) {
	path := fmt.Sprintf("/api/cb/%d/meetings?limit=%d", boardNumber, limit)
	var resp meetingsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// WaitForAnalysis polls JobStatus with exponential backoff until the job
// reaches a terminal state or the polling window closes. A failed job is
// returned together with a permanent error.
func (c *Client) WaitForAnalysis(ctx context.Context, jobID string) (*entities.ProcessingJob, error) {
	ctx, cancel := jobcontext.JobBegin(ctx, jobID, c.pollMaxWait)
	defer cancel()

	var job *entities.ProcessingJob
	op := func() error {
		j, err := c.JobStatus(ctx, jobID)
		if err != nil {
			if jobcontext.IsRetryableError(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if j.Status == entities.JobStatusFailed {
			job = j
			return backoff.Permanent(fmt.Errorf("processing failed: %s", j.Error))
		}
		if !j.Done() {
			return fmt.Errorf("job %s still %s", jobID, j.Status)
		}
		job = j
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.pollInterval
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = c.pollMaxWait

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return job, err
	}
	return job, nil
}

// do performs one request against the backend and decodes the JSON
// response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
