package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/boardwatchnyc/boardwatch/internal/domain/entities"
	"github.com/boardwatchnyc/boardwatch/pkg/config"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.BackendConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		PollInterval:   10 * time.Millisecond,
		PollMaxWait:    2 * time.Second,
	})
}

func TestProcessYouTube_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/process-youtube" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("missing X-Request-ID header")
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["url"] != "https://www.youtube.com/watch?v=abc123" {
			t.Fatalf("unexpected url %q", payload["url"])
		}
		json.NewEncoder(w).Encode(entities.ProcessingJob{JobID: "job-1", Status: entities.JobStatusPending})
	}))
	defer ts.Close()

	job, err := testClient(ts.URL).ProcessYouTube(context.Background(), "https://www.youtube.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if job.JobID != "job-1" || job.Status != entities.JobStatusPending {
		t.Fatalf("unexpected job %+v", job)
	}
}

func TestProcessFile_SendsMultipart(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "meeting.mp4" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "fake video bytes" {
			t.Fatalf("unexpected body %q", data)
		}
		json.NewEncoder(w).Encode(entities.ProcessingJob{JobID: "job-2", Status: entities.JobStatusProcessing})
	}))
	defer ts.Close()

	job, err := testClient(ts.URL).ProcessFile(context.Background(), "meeting.mp4", strings.NewReader("fake video bytes"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if job.JobID != "job-2" {
		t.Fatalf("unexpected job id %s", job.JobID)
	}
}

func TestMeetings_DecodesListing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cb/7/meetings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "20" {
			t.Fatalf("unexpected limit %s", r.URL.Query().Get("limit"))
		}
		json.NewEncoder(w).Encode(meetingsResponse{Meetings: []entities.MeetingRecord{
			{VideoID: "v1", Title: "CB7 Full Board Meeting", Status: "completed"},
		}})
	}))
	defer ts.Close()

	meetings, err := testClient(ts.URL).Meetings(context.Background(), 7, 20)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if len(meetings) != 1 || meetings[0].VideoID != "v1" {
		t.Fatalf("unexpected meetings %+v", meetings)
	}
}

func TestJobStatus_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).JobStatus(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWaitForAnalysis_PollsUntilCompleted(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		job := entities.ProcessingJob{JobID: "job-3", Status: entities.JobStatusProcessing}
		if n >= 3 {
			job.Status = entities.JobStatusCompleted
			job.Analysis = &entities.Analysis{Summary: "done"}
		}
		json.NewEncoder(w).Encode(job)
	}))
	defer ts.Close()

	job, err := testClient(ts.URL).WaitForAnalysis(context.Background(), "job-3")
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if job.Status != entities.JobStatusCompleted || job.Analysis == nil {
		t.Fatalf("unexpected job %+v", job)
	}
	if atomic.LoadInt32(&calls) < 3 {
		t.Fatalf("expected at least 3 polls, got %d", calls)
	}
}

func TestWaitForAnalysis_FailedJobIsPermanent(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(entities.ProcessingJob{
			JobID:  "job-4",
			Status: entities.JobStatusFailed,
			Error:  "audio extraction failed",
		})
	}))
	defer ts.Close()

	job, err := testClient(ts.URL).WaitForAnalysis(context.Background(), "job-4")
	if err == nil {
		t.Fatalf("expected error for failed job")
	}
	if job == nil || job.Status != entities.JobStatusFailed {
		t.Fatalf("expected failed job to be returned, got %+v", job)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("failed job must not be re-polled, got %d calls", calls)
	}
}

func TestHealth_DownBackend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	if err := testClient(ts.URL).Health(context.Background()); err == nil {
		t.Fatalf("expected health check to fail")
	}
}
